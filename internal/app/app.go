package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tobyhogan/seasons-viewer-tool/internal/controllers/restserver"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	clock          session.Clock
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, clock session.Clock, logger *zap.SugaredLogger) *App {
	if clock == nil {
		clock = session.SystemClock{}
	}
	return &App{
		configProvider: configProvider,
		clock:          clock,
		logger:         logger,
	}
}

// Run serves the REST host and blocks until a signal arrives or ctx ends.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return err
	}
	opts, err := SessionOptions(cfg)
	if err != nil {
		return err
	}
	sessions := session.NewManager(opts, a.clock)

	rest, err := restserver.NewController(ctx, &wg, a.configProvider, sessions, a.logger)
	if err != nil {
		return err
	}
	if err := rest.StartController(); err != nil {
		return err
	}

	log.Infow("Application started successfully",
		"location", cfg.Location.Name,
		"latitude", cfg.Location.Latitude,
		"longitude", cfg.Location.Longitude,
		"addr", cfg.Server.Addr())

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
