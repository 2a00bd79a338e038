package domain

import "time"

// RecommendConfig tunes the recommender. Weights reflect how strongly each
// signal predicts a taste match: director > similar > genre > actor.
type RecommendConfig struct {
	DirectorWeight int           `env:"RECOMMEND_WEIGHT_DIRECTOR" envDefault:"5"`
	SimilarWeight  int           `env:"RECOMMEND_WEIGHT_SIMILAR"  envDefault:"4"`
	GenreWeight    int           `env:"RECOMMEND_WEIGHT_GENRE"    envDefault:"3"`
	ActorWeight    int           `env:"RECOMMEND_WEIGHT_ACTOR"    envDefault:"2"`
	SignalLimit    int           `env:"RECOMMEND_SIGNAL_LIMIT"    envDefault:"20"`
	MaxResults     int           `env:"RECOMMEND_MAX_RESULTS"     envDefault:"20"`
	MaxConcurrency int           `env:"RECOMMEND_MAX_CONCURRENCY" envDefault:"16"`
	Timeout        time.Duration `env:"RECOMMEND_TIMEOUT"         envDefault:"10s"`
}

// DefaultRecommendConfig mirrors the envDefault values above.
func DefaultRecommendConfig() RecommendConfig {
	return RecommendConfig{
		DirectorWeight: 5,
		SimilarWeight:  4,
		GenreWeight:    3,
		ActorWeight:    2,
		SignalLimit:    20,
		MaxResults:     20,
		MaxConcurrency: 16,
		Timeout:        10 * time.Second,
	}
}
