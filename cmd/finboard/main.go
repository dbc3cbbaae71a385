package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finboard/internal/cache"
	"finboard/internal/config"
	"finboard/internal/contacts"
	apphttp "finboard/internal/http"
	"finboard/internal/kv"
	applog "finboard/internal/log"
	"finboard/internal/notify"
	"finboard/internal/state"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err.Error())
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage",
			applog.FieldError, err.Error(),
			"backend", cfg.KVBackend)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("Storage initialized", "backend", cfg.KVBackend)

	center := notify.NewCenter()
	defer center.Close()

	contactsClient := contacts.NewClient(cfg.ContactsURL, cfg.ContactsTimeout, cfg.ContactsCacheTTL)

	caches := cache.NewManager()
	caches.Register(contactsClient.Cache())
	caches.StartCleanup(time.Minute)
	defer caches.Stop()

	srv := apphttp.NewServer(cfg, apphttp.Deps{
		Logger:       logger,
		Transactions: state.NewTransactions(store),
		Settings:     state.NewSettings(store),
		Auth:         state.NewAuth(store),
		Alerts:       state.NewBudgetAlerts(),
		Layouts:      state.NewLayouts(store),
		Theme:        state.NewTheme(store),
		Center:       center,
		Contacts:     contactsClient,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting finboard server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received", applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err.Error())
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}

func openStore(cfg *config.Config, logger *applog.Logger) (kv.Store, func(), error) {
	switch cfg.KVBackend {
	case "sqlite":
		s, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Error("Failed to close database", applog.FieldError, err.Error())
			}
		}, nil
	default:
		return kv.NewMemory(), func() {}, nil
	}
}
