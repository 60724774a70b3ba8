// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Takaful. They are loaded
// via WAFFLE's config system with support for config files, environment
// variables (TAKAFUL_STORAGE_BACKEND, ...), and command-line flags.
var appConfigKeys = []config.AppKey{
	{Name: "storage_backend", Default: "sqlite", Desc: "Storage backend: 'sqlite', 'mongo', or 'memory'"},
	{Name: "sqlite_path", Default: "takaful.db", Desc: "Path of the SQLite database file"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "takaful", Desc: "MongoDB database name"},
	{Name: "audit_log", Default: "all", Desc: "Audit trail destination: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TAKAFUL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StorageBackend: appValues.String("storage_backend"),
		SQLitePath:     appValues.String("sqlite_path"),
		MongoURI:       appValues.String("mongo_uri"),
		MongoDatabase:  appValues.String("mongo_database"),
		AuditLog:       appValues.String("audit_log"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig enforces config invariants before any backend is opened.
func ValidateConfig(appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StorageBackend {
	case "sqlite", "memory":
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", appCfg.StorageBackend)
	}

	switch appCfg.AuditLog {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("unknown audit_log destination %q", appCfg.AuditLog)
	}
	return nil
}
