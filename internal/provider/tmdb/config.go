package tmdb

// Config contains TMDb metadata service configuration.
//   - APIKey: sent as the api_key query parameter on every request
//   - ImageBaseURL: prefix joined with raw poster path fragments
//   - Timeout: per-request HTTP timeout (in seconds)
//   - RateLimit/RateBurst: client-side request rate (requests per second)
//   - MaxCast/MaxDirectors: caps on the people lists of a full movie
type Config struct {
	APIKey       string  `env:"TMDB_API_KEY"`
	BaseURL      string  `env:"TMDB_BASE_URL"       envDefault:"https://api.themoviedb.org/3"`
	ImageBaseURL string  `env:"TMDB_IMAGE_BASE_URL" envDefault:"https://image.tmdb.org/t/p/w500"`
	Timeout      int     `env:"TMDB_TIMEOUT"        envDefault:"10"`
	RateLimit    float64 `env:"TMDB_RATE_LIMIT"     envDefault:"40"`
	RateBurst    int     `env:"TMDB_RATE_BURST"     envDefault:"20"`
	MaxCast      int     `env:"TMDB_MAX_CAST"       envDefault:"5"`
	MaxDirectors int     `env:"TMDB_MAX_DIRECTORS"  envDefault:"2"`
}
