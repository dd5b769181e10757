// Package app wires the state core together and owns process lifecycle.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tempestweather/tempest-core/internal/config"
	"github.com/tempestweather/tempest-core/internal/locations"
	"github.com/tempestweather/tempest-core/internal/log"
	"github.com/tempestweather/tempest-core/internal/persistence"
	"github.com/tempestweather/tempest-core/internal/refresh"
	"github.com/tempestweather/tempest-core/internal/storage"
	"github.com/tempestweather/tempest-core/internal/store"
	"github.com/tempestweather/tempest-core/internal/widget"
)

// App represents the main application
type App struct {
	cfg      *config.Config
	fetcher  refresh.Fetcher
	searcher locations.Searcher
	logger   *zap.SugaredLogger

	store     *store.Store
	locations *locations.Service
	refresher *refresh.Service
}

// New creates a new application instance. The forecast and search
// collaborators are injected at the composition root; either may be nil,
// which disables the features that need it.
func New(cfg *config.Config, fetcher refresh.Fetcher, searcher locations.Searcher, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:      cfg,
		fetcher:  fetcher,
		searcher: searcher,
		logger:   logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kv, err := storage.NewSQLiteKV(a.cfg.StatePath())
	if err != nil {
		return err
	}
	defer kv.Close()

	var slot storage.Slot
	if a.cfg.WidgetSlotDir != "" {
		slot = storage.NewFileSlot(a.cfg.WidgetSlotDir)
	} else {
		log.Info("no widget slot directory configured; widget projection disabled")
	}

	adapter := persistence.NewAdapter(kv)
	st := store.New(adapter, widget.NewProjector(slot))
	a.store = st

	// Hydrate from the durable record before accepting commands.
	st.Hydrate(adapter.Load(ctx))
	log.Infow("state hydrated", "locations", len(st.Locations()))

	if a.searcher != nil {
		a.locations = locations.NewService(st, a.searcher)
	}

	if a.fetcher != nil {
		a.refresher = refresh.NewService(st, a.fetcher)
		if err := a.refresher.Start(); err != nil {
			return err
		}
		defer a.refresher.Stop()
	} else {
		log.Info("no forecast provider configured; scheduled refresh disabled")
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	// Let in-flight saves and projections land before closing storage.
	log.Info("waiting for background side effects to finish...")
	st.Wait()
	log.Info("shutdown complete")

	return nil
}

// Store exposes the state command API to the embedding host. Valid after
// Run has started.
func (a *App) Store() *store.Store {
	return a.store
}

// Locations exposes the add-by-search boundary, or nil when no search
// collaborator was configured.
func (a *App) Locations() *locations.Service {
	return a.locations
}

// Refresher exposes manual refresh, or nil when no forecast collaborator
// was configured.
func (a *App) Refresher() *refresh.Service {
	return a.refresher
}
