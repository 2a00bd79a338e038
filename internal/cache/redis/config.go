package redis

// Config contains Redis cache backend settings.
type Config struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"cinematch:"`
}
