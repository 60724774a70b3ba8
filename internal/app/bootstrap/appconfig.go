// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds application-level configuration, loaded in LoadConfig from
// config files, environment variables (TAKAFUL_*), or command-line flags.
type AppConfig struct {
	// Storage backend selection: "sqlite" (default), "mongo", or "memory"
	// (throwaway, for smoke runs).
	StorageBackend string

	// SQLite configuration (used when StorageBackend is "sqlite").
	SQLitePath string

	// MongoDB configuration (used when StorageBackend is "mongo").
	MongoURI      string
	MongoDatabase string

	// Audit trail destination: "all" (store + log), "db", "log", or "off".
	AuditLog string
}
