package domain

// DefaultGenreID is used for genre names missing from the table (Action).
const DefaultGenreID = 28

//nolint:gochecknoglobals // fixed lookup table
var genreIDs = map[string]int{
	"Action":          28,
	"Adventure":       12,
	"Animation":       16,
	"Comedy":          35,
	"Crime":           80,
	"Documentary":     99,
	"Drama":           18,
	"Family":          10751,
	"Fantasy":         14,
	"History":         36,
	"Horror":          27,
	"Music":           10402,
	"Mystery":         9648,
	"Romance":         10749,
	"Science Fiction": 878,
	"TV Movie":        10770,
	"Thriller":        53,
	"War":             10752,
	"Western":         37,
}

// GenreID resolves a genre name to the upstream numeric id.
// Unknown names resolve to DefaultGenreID rather than failing.
func GenreID(name string) int {
	if id, ok := genreIDs[name]; ok {
		return id
	}
	return DefaultGenreID
}

// GenreName resolves an upstream genre id back to its name.
func GenreName(id int) (string, bool) {
	for name, genreID := range genreIDs {
		if genreID == id {
			return name, true
		}
	}
	return "", false
}
