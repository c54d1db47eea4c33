package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"automfg/cmd"
	httpadapter "automfg/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "automfg",
		Short:         "Vehicle manufacturing order service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), relayCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the outbox relay job",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, logger, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			manager, err := app.CreateJobManager()
			if err != nil {
				return err
			}
			if err = manager.StartAll(); err != nil {
				return err
			}
			defer manager.StopAll()

			e, err := httpadapter.NewEcho(httpadapter.NewServer(app.CreateHTTPHandlers()), logger)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf("0.0.0.0:%s", app.Config().HTTPPort)
			serveErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server started", "addr", addr)
				serveErr <- e.Start(addr)
			}()

			select {
			case err = <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("HTTP server shutting down")
			return e.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			app, logger, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err = app.Migrate(c.Context()); err != nil {
				return err
			}
			logger.Info("Schema is up to date")
			return nil
		},
	}
}

func relayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Dispatch one batch of pending outbox notifications and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			app, logger, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			command, err := app.CreateRelayOutboxCommand()
			if err != nil {
				return err
			}
			report, err := app.CreateRelayOutboxCommandHandler().Handle(c.Context(), command)
			if err != nil {
				return err
			}
			logger.Info("Outbox relayed", "published", report.Published, "failed", report.Failed)
			return nil
		},
	}
}

func bootstrap(ctx context.Context) (*cmd.CompositionRoot, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, cfg, db, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, logger, nil
}
