package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/gym-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-manager/internal/db"
	"github.com/BruksfildServices01/gym-manager/internal/ratelimit"
	"github.com/BruksfildServices01/gym-manager/internal/routes"
)

func main() {
	root := &cobra.Command{
		Use:           "gym-manager",
		Short:         "API de gestión de gimnasios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig carga config y deja el logger listo. Lo usan todos los comandos.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogger(cfg.Env)
	return cfg, nil
}

// ======================================================
// SERVE
// ======================================================

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Arranca el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log.Info().Str("env", cfg.Env).Str("db_driver", cfg.DBDriver).Msg("starting gym api")

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			limiter, err := ratelimit.New(cfg)
			if err != nil {
				log.Warn().Err(err).Msg("redis unavailable, login limiter falls back to memory")
				limiter = ratelimit.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow, nil)
			}
			if rl, ok := limiter.(*ratelimit.RedisLimiter); ok {
				defer rl.Close()
			}

			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()
			r.Use(gin.Recovery())
			routes.RegisterRoutes(r, db, cfg, limiter)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				log.Info().Str("addr", cfg.Addr()).Msg("server running")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("Shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
			}
			log.Info().Msg("Server exited")
			return nil
		},
	}
}

// ======================================================
// MIGRATE
// ======================================================

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de base de datos",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// NewDB ya migra al abrir.
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
			log.Info().Msg("migrations completed successfully")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte todas las migraciones (solo postgres)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDriver != config.DriverPostgres {
				return fmt.Errorf("migrate down requires DB_DRIVER=postgres")
			}
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := dbpkg.MigrateDown(db); err != nil {
				return err
			}
			log.Info().Msg("migrations reverted")
			return nil
		},
	})

	return cmd
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}
