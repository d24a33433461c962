// @title        Pillbox Records API
// @version      1.0
// @description  Doctor, patient and pillbox records for the pillbox tracking application.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pillbox-tracker/records-api/internal/api"
	"github.com/pillbox-tracker/records-api/internal/api/handler"
	"github.com/pillbox-tracker/records-api/internal/core/credential"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
	"github.com/pillbox-tracker/records-api/internal/core/service"
	"github.com/pillbox-tracker/records-api/internal/infrastructure/db/mongo"
	"github.com/pillbox-tracker/records-api/internal/infrastructure/db/postgres"
	"github.com/pillbox-tracker/records-api/internal/infrastructure/db/redis"
	"github.com/pillbox-tracker/records-api/internal/pkg/config"
	"github.com/pillbox-tracker/records-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "pillbox-api",
		Short: "Pillbox tracking records API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the relational schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			db, err := connectPostgres(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeGorm(db)

			log.Info().Msg("schema is up to date")
			return nil
		},
	}
}

func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "pillbox-api",
	})
	return cfg, log, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	}, logger.Component("postgres"))
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		closeGorm(db)
		return nil, err
	}
	log.Info().Msg("postgres connected")
	return db, nil
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runServer(ctx context.Context) error {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	db, err := connectPostgres(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("postgres unavailable")
		return err
	}
	defer closeGorm(db)

	probes := []handler.Probe{
		{Name: "postgres", Check: func(ctx context.Context) error { return postgres.Ping(ctx, db) }},
	}

	var audit ports.AuditLog
	if cfg.Mongo.URI != "" {
		trail, err := mongo.OpenAuditTrail(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return err
		}
		defer func() { _ = trail.Close(context.Background()) }()

		audit = trail.Log()
		probes = append(probes, handler.Probe{Name: "mongodb", Check: trail.Ping})
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	var replay ports.BatchReplayStore
	if cfg.Redis.Addr != "" {
		store, err := redis.OpenReplayStore(ctx, redis.Config{
			Addr:      cfg.Redis.Addr,
			DB:        cfg.Redis.DB,
			Timeout:   cfg.Redis.Timeout,
			ReplayTTL: cfg.Redis.ReplayTTL,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		replay = store
		probes = append(probes, handler.Probe{Name: "redis", Check: store.Ping})
		log.Info().Dur("ttl", cfg.Redis.ReplayTTL).Msg("pillbox replay guard enabled")
	}

	issuer := credential.NewIssuer(cfg.BcryptCost)
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	pillboxRepo := postgres.NewPillboxRepository(db)

	e := api.NewRouter(api.Deps{
		Doctors:         service.NewDoctorService(doctorRepo, issuer, audit, logger.Component("doctors")),
		Patients:        service.NewPatientService(patientRepo, issuer, audit, logger.Component("patients")),
		Pillboxes:       service.NewPillboxService(pillboxRepo, patientRepo, replay, audit, logger.Component("pillboxes")),
		PillboxBatchMax: cfg.PillboxBatchMax,
		Probes:          probes,
		Logger:          logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
