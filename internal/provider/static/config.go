package static

// Config contains the offline catalog configuration.
// An empty FixturePath selects the catalog embedded in the binary.
type Config struct {
	FixturePath string `env:"CATALOG_FIXTURE_PATH"`
}
