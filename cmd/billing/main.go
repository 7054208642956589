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

	"inspection-billing/config"
	"inspection-billing/internal/adapter/storage/postgres"
	"inspection-billing/internal/app"
	"inspection-billing/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "billing",
		Short:         "Inspection billing service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default ./config.yaml or ./config/config.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newReconcileCmd(opts),
		newSweepCmd(opts),
	)
	return root
}

func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty, "inspection-billing"), nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			log.Info().
				Str("mode", cfg.Server.Mode).
				Int("port", cfg.Server.Port).
				Str("driver", cfg.Database.Driver).
				Msg("Starting inspection billing")

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			srv := &http.Server{
				Addr:              cfg.Server.Addr(),
				Handler:           a.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case err := <-errCh:
				return fmt.Errorf("http server: %w", err)
			}
			log.Info().Msg("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
			}

			log.Info().Msg("Server exited")
			return nil
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver == app.DriverMemory {
				return errors.New("migrate requires database.driver=postgres")
			}
			applied, err := postgres.Migrate(cfg.Database.DSN(), log)
			if err != nil {
				return err
			}
			log.Info().Uint("version", applied).Msg("migrations applied")
			return nil
		},
	}
}

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <intent-id>",
		Short: "Poll the gateway for one payment intent and apply its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intentID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("intent id: %w", err)
			}
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			answer, err := a.Reconciler.Reconcile(cmd.Context(), intentID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", answer.IntentID, answer.Status, answer.TotalAmount)
			return nil
		},
	}
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		minAge time.Duration
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Reconcile stale PENDING intents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-age") {
				minAge = cfg.Reconcile.MinAge
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Reconcile.BatchSize
			}

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Reconciler.SweepStale(cmd.Context(), minAge, limit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scanned=%d changed=%d failed=%d\n", res.Scanned, res.Changed, res.Failed)
			return nil
		},
	}
	cmd.Flags().DurationVar(&minAge, "min-age", 0, "only intents older than this (default reconcile.min_age)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum intents per run (default reconcile.batch_size)")
	return cmd
}
