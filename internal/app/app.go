// Package app wires configuration, stores, sync and the WhatsApp share
// client into one runnable application.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/maozinhaws/pintor-pro/internal/infra/config"
	"github.com/maozinhaws/pintor-pro/internal/infra/logger"
	"github.com/maozinhaws/pintor-pro/internal/quoting"
	"github.com/maozinhaws/pintor-pro/internal/remote"
	"github.com/maozinhaws/pintor-pro/internal/session"
	"github.com/maozinhaws/pintor-pro/internal/share"
	"github.com/maozinhaws/pintor-pro/internal/store"
	syncsvc "github.com/maozinhaws/pintor-pro/internal/sync"
)

// App is the main application orchestrator.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Store   *store.Container
	Remote  remote.Store
	Session *session.Session
	Sync    *syncsvc.Coordinator
	Quoting *quoting.Service
	Share   *share.Client

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new App instance. The local store always comes up; the
// remote store and the share client are optional per configuration.
func New(cfg *config.Config) (*App, error) {
	log := logger.New("pintor", cfg.LogLevel)
	log.Infof("Initializing Pintor Pro...")

	if err := cfg.EnsureStorePath(); err != nil {
		return nil, fmt.Errorf("failed to ensure store path: %w", err)
	}

	dbPath := filepath.Join(cfg.StorePath, "pintor.db")
	localStore, err := store.New(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	container := store.NewContainer(localStore)

	ctx, cancel := context.WithCancel(context.Background())

	var remoteStore remote.Store
	if cfg.Remote.Enabled {
		ds, err := remote.NewDynamoStore(ctx, cfg.Remote, log)
		if err != nil {
			container.Close()
			cancel()
			return nil, fmt.Errorf("failed to create remote store: %w", err)
		}
		remoteStore = ds
	}

	sess := session.New()
	coordinator := syncsvc.NewCoordinator(container, remoteStore, sess, cfg.Sync, log)
	quoteService := quoting.NewService(container, coordinator, log)

	var shareClient *share.Client
	if cfg.Share.Enabled {
		shareClient, err = share.NewClient(cfg.StorePath, cfg.Share, log)
		if err != nil {
			container.Close()
			cancel()
			return nil, fmt.Errorf("failed to create share client: %w", err)
		}
	}

	return &App{
		Config:  cfg,
		Log:     log,
		Store:   container,
		Remote:  remoteStore,
		Session: sess,
		Sync:    coordinator,
		Quoting: quoteService,
		Share:   shareClient,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.Log.Infof("Starting Pintor Pro...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		a.Log.Infof("Received %v, initiating shutdown...", sig)
		a.cancel()
	}()

	if a.Config.AccountID != "" {
		a.Session.Open(a.Config.AccountID)
		a.Log.Infof("Signed in as %s", a.Config.AccountID)
		a.Sync.OnSignIn()
	} else {
		a.Log.Infof("No account configured, running local-only")
	}

	if a.Share != nil {
		if err := a.Share.Connect(a.ctx); err != nil {
			if a.ctx.Err() != nil {
				a.Log.Infof("Shutdown during startup")
				return a.Shutdown()
			}
			return err
		}
	}

	if stats, err := a.Store.GetStats(); err == nil {
		a.Log.Infof("Store holds %d quote(s), %d client(s), %d event(s)",
			stats.Orcamentos, stats.Clientes, stats.Eventos)
	}

	a.Log.Infof("Pintor Pro is running. Press Ctrl+C to stop.")
	<-a.ctx.Done()
	return a.Shutdown()
}

// Shutdown drains pending pushes and closes everything.
func (a *App) Shutdown() error {
	a.cancel()
	a.Log.Infof("Shutting down...")

	a.Sync.Wait()

	if a.Share != nil {
		if err := a.Share.Close(); err != nil {
			a.Log.Warnf("Failed to close share client: %v", err)
		}
	}
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	a.Log.Infof("Shutdown complete")
	return nil
}
