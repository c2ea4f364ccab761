package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/eventbroker/nats"
	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/handlers/http/chi"
	licensehandler "github.com/projecthowly/beatstore-bot-sub000/internal/adapters/handlers/http/chi/v1/license"
	sessionhandler "github.com/projecthowly/beatstore-bot-sub000/internal/adapters/handlers/http/chi/v1/session"
	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/repository/postgres"
	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/storage/s3"
	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/service/license"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/service/session"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	gateway, err := s3.NewGateway(ctx, cfg.S3, logger)
	if err != nil {
		logger.Error("failed to init storage gateway", "error", err)
		os.Exit(1)
	}

	//event broker
	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	//repositories
	licenseRepo := postgres.NewSqlLicenseRepository(db)
	unitOfWork := postgres.NewUnitOfWork(db)

	licenseService := license.NewLicenseService(licenseRepo)
	sessionService := session.NewSessionService(unitOfWork, gateway, publisher, cfg.Session, logger)

	//http
	sessionHandler := sessionhandler.NewSessionHandlerV1(sessionService, logger)
	licenseHandler := licensehandler.NewLicenseHandlerV1(licenseService, logger)

	router := chi.NewRouter(logger, sessionHandler, licenseHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init session purge task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initPurgeTask(ctx, sessionService, cfg.Session.CleanupEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initPurgeTask(ctx context.Context, service port.UploadSessionService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("session purge task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			purged := service.PurgeExpired(ctx, time.Now())
			if purged > 0 {
				logger.Info("session purge task completed", "purged", purged)
			}
		case <-ctx.Done():
			logger.Info("session purge task stopped")
			return
		}
	}

}
