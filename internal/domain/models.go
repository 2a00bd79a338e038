package domain

// Person is a cast or crew member. Scoring keys on ID, never on Name.
type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the catalog entity. Two Movie values with the same ID are the same
// movie regardless of the other fields.
//
// Abbreviated movies (search results and discovery listings) carry only ID,
// Title, PosterPath and Overview; their list fields are empty, never nil.
type Movie struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	PosterPath string   `json:"posterPath"`
	Overview   string   `json:"overview"`
	Genres     []string `json:"genres"`
	Actors     []Person `json:"actors"`
	Directors  []Person `json:"directors"`
}

// Abbreviated returns a copy stripped down to the listing fields.
func (m Movie) Abbreviated() Movie {
	return Movie{
		ID:         m.ID,
		Title:      m.Title,
		PosterPath: m.PosterPath,
		Overview:   m.Overview,
		Genres:     []string{},
		Actors:     []Person{},
		Directors:  []Person{},
	}
}
