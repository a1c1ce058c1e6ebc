package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wichananm65/account-service/internal/domain/repository"
	"github.com/wichananm65/account-service/internal/infrastructure/config"
	"github.com/wichananm65/account-service/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/account-service/internal/infrastructure/database/postgres"
	"github.com/wichananm65/account-service/internal/infrastructure/logging"
	httpHandler "github.com/wichananm65/account-service/internal/interface/http/handler"
	"github.com/wichananm65/account-service/internal/interface/http/router"
	"github.com/wichananm65/account-service/internal/interface/presenter"
	"github.com/wichananm65/account-service/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("failed to set up logging: %v", err)
	}

	accountRepo, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()

	accountPresenter := presenter.NewAccountPresenter()
	accountUsecase := usecase.NewAccountService(accountRepo)
	accountHandler := httpHandler.NewAccountHandler(accountUsecase, accountPresenter, log)

	app := router.New(log, router.Options{AllowOrigins: cfg.CORSAllowOrigins}, accountHandler, httpHandler.NewHealthHandler())

	go func() {
		log.WithField("addr", cfg.Addr()).Info("starting server")
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("shutting down")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// openStore returns the account repository selected by STORE_BACKEND and a
// func releasing whatever it holds.
func openStore(cfg config.Config, log logrus.FieldLogger) (repository.AccountRepository, func(), error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Warn("using in-memory store; accounts are lost on restart")
		return inmemory.NewAccountRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoCreateSchema {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	log.WithField("driver", cfg.DatabaseDriver).Info("connected to database")

	return postgres.NewAccountRepository(db), func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}, nil
}
