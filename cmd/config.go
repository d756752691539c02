package cmd

// Config carries the runtime settings of the service.
//
// StorageBackend selects between the in-memory store ("memory") and
// Postgres ("postgres"). SeedData only applies to the memory backend and
// loads the demo fixture on startup.
type Config struct {
	HTTPPort       string
	StorageBackend string
	SeedData       bool
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
}
