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

	"github.com/spf13/cobra"

	"github.com/seba-moreno/real-estate-tracker/internal/app"
	"github.com/seba-moreno/real-estate-tracker/internal/config"
	"github.com/seba-moreno/real-estate-tracker/internal/migrations"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			autoMigrate, _ := cmd.Flags().GetBool("migrate")
			seed, _ := cmd.Flags().GetBool("seed")

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			if autoMigrate && cfg.StorageDriver == config.StorageDriverPostgres {
				if err := runMigrations(cfg.DatabaseURL); err != nil {
					return err
				}
			}

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			if seed || cfg.LDFlag_SeedDbWithTestData {
				if err := app.SeedAllTestData(cmd.Context(), application); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
			}

			scheduler, err := application.StartScheduler()
			if err != nil {
				return err
			}
			defer func() { <-scheduler.Stop().Done() }()

			return serve(cmd.Context(), cfg, app.NewRouter(application))
		},
	}

	cmd.Flags().Bool("migrate", true, "Create or update the schema before serving (postgres only)")
	cmd.Flags().Bool("seed", false, "Load the demo dataset into an empty store before serving")

	return cmd
}

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StorageDriverPostgres {
				return fmt.Errorf("migrate requires the %q storage driver", config.StorageDriverPostgres)
			}
			return runMigrations(cfg.DatabaseURL)
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StorageDriverPostgres {
				return fmt.Errorf("seed requires the %q storage driver", config.StorageDriverPostgres)
			}

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			return app.SeedAllTestData(cmd.Context(), application)
		},
	}
}

func runMigrations(databaseURL string) error {
	db, err := migrations.Open(databaseURL)
	if err != nil {
		return fmt.Errorf("open database for migrations: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	utils.Logger.Info("Schema is up to date")
	return nil
}

// serve runs the server until ctx is done or SIGINT/SIGTERM arrives.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	utils.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
