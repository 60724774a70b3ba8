// internal/app/bootstrap/app.go

// Package bootstrap constructs the application once at process start: one kv
// backend, one store aggregate, one recorder, and one instance of each
// service, all injected explicitly. There is no module-level state anywhere;
// shutting down is closing the App.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/features/beneficiaries"
	"github.com/takafulhq/takaful/internal/app/features/branches"
	"github.com/takafulhq/takaful/internal/app/features/regions"
	"github.com/takafulhq/takaful/internal/app/features/sponsors"
	"github.com/takafulhq/takaful/internal/app/features/tags"
	"github.com/takafulhq/takaful/internal/app/features/users"
	"github.com/takafulhq/takaful/internal/app/store"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/auth"
)

// App bundles the constructed services. The UI (or CLI) layer holds one App
// for the process lifetime.
type App struct {
	Store *store.Store
	Audit *auditlog.Recorder
	Auth  *auth.Service

	Branches      *branches.Service
	Regions       *regions.Service
	Users         *users.Service
	Beneficiaries *beneficiaries.Service
	Sponsors      *sponsors.Service
	Tags          *tags.Service

	log *zap.Logger
}

// New opens the configured kv backend and wires every service onto it.
func New(ctx context.Context, cfg AppConfig, logger *zap.Logger) (*App, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(backend)
	audit := auditlog.New(st.Audit, logger, auditlog.Config{Destination: cfg.AuditLog})

	app := &App{
		Store:         st,
		Audit:         audit,
		Auth:          auth.New(st.Users, st.Settings, logger),
		Branches:      branches.New(st.Branches, audit, logger),
		Regions:       regions.New(st.Regions, st.Branches, audit, logger),
		Users:         users.New(st.Users, st.Branches, audit, logger),
		Beneficiaries: beneficiaries.New(st.Beneficiaries, st.Regions, audit, logger),
		Sponsors:      sponsors.New(st.Sponsors, audit, logger),
		Tags:          tags.New(st.Tags, audit, logger),
		log:           logger,
	}

	logger.Info("application ready", zap.String("storage_backend", cfg.StorageBackend))
	return app, nil
}

func openBackend(ctx context.Context, cfg AppConfig) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemory(), nil
	case "sqlite":
		return kv.OpenSQLite(cfg.SQLitePath)
	case "mongo":
		return kv.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Close releases the kv backend. The App is unusable afterwards.
func (a *App) Close() error {
	a.log.Info("shutting down")
	return a.Store.Close()
}
