package tmdb

// Wire types for TMDb JSON payloads. Null handling:
//   - poster_path null or "" -> PosterPath ""
//   - title/overview null -> ""
//   - genres, credits, cast or crew null -> empty lists

type movieResult struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
	Overview   string  `json:"overview"`
	Popularity float64 `json:"popularity"`
}

type moviePage struct {
	Page    int           `json:"page"`
	Results []movieResult `json:"results"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type castMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type crewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type credits struct {
	Cast []castMember `json:"cast"`
	Crew []crewMember `json:"crew"`
}

type movieDetails struct {
	movieResult

	Genres  []genre  `json:"genres"`
	Credits *credits `json:"credits"`
}

// crewCredit is one entry of person/{id}/movie_credits: a movie plus the person's job on it.
type crewCredit struct {
	movieResult

	Job string `json:"job"`
}

type personMovieCredits struct {
	Crew []crewCredit `json:"crew"`
}

const directorJob = "Director"
