package hostsql

// DefaultVerifyConcurrency bounds the number of probes Verify runs at once.
const DefaultVerifyConcurrency = 4

// Config holds the settings of the host database.
type Config struct {
	// Name is the database name foreign tables are exposed under.
	Name string `yaml:"name" env:"QDRANT_FDW_DATABASE"`

	// VerifyConcurrency is the maximum number of tables probed in parallel by Verify.
	VerifyConcurrency int `yaml:"verify_concurrency" env:"QDRANT_FDW_VERIFY_CONCURRENCY"`

	// VerifyOnStart probes every foreign table when the application starts.
	// A failed probe is logged and does not stop the application.
	VerifyOnStart bool `yaml:"verify_on_start" env:"QDRANT_FDW_VERIFY_ON_START"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Name:              "qdrant",
		VerifyConcurrency: DefaultVerifyConcurrency,
	}
}
