package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitalapp/api/internal/config"
	"github.com/vitalapp/api/internal/domain/alert"
	"github.com/vitalapp/api/internal/platform/cache"
	"github.com/vitalapp/api/internal/platform/db"
	"github.com/vitalapp/api/internal/platform/middleware"
	"github.com/vitalapp/api/internal/platform/notification"
	"github.com/vitalapp/api/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "vitalapp-server",
		Short:        "VitalApp API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := server.New(zerolog.Nop(), server.Options{})
			return printRoutes(cmd.OutOrStdout(), app.Routes())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the configured API version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.AppVersion)
			return nil
		},
	}
}

func printRoutes(w io.Writer, routes []server.Route) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\n", r.Method, r.Path)
	}
	return tw.Flush()
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// dependencies holds the optional external clients and closes them in reverse
// order of opening.
type dependencies struct {
	closers []func()
}

func (d *dependencies) onClose(fn func()) {
	d.closers = append(d.closers, fn)
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// buildOptions opens the dependencies named in cfg. An unreachable database or
// cache does not stop the server; /ready reports it instead. A broker that
// refuses the connection disables alert notifications.
func buildOptions(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (server.Options, *dependencies, error) {
	deps := &dependencies{}
	opts := server.Options{
		Version:     cfg.AppVersion,
		CORSOrigins: cfg.CORSOrigins,
		BodyLimit:   cfg.BodyLimit,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			BurstSize:         cfg.RateLimitBurst,
			IdleTTL:           middleware.DefaultRateLimitConfig().IdleTTL,
		},
		RequestTimeout: cfg.RequestTimeout,
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			deps.Close()
			return server.Options{}, nil, err
		}
		probe := db.NewProbe(pool)
		deps.onClose(probe.Close)
		opts.Database = probe
		logger.Info().Int32("max_conns", probe.Stats().MaxConns).Msg("database probe configured")
	}

	if cfg.RedisURL != "" {
		rc, err := cache.New(cfg.RedisURL)
		if err != nil {
			deps.Close()
			return server.Options{}, nil, err
		}
		deps.onClose(func() { _ = rc.Close() })
		opts.Cache = rc
		logger.Info().Msg("cache probe configured")
	}

	if cfg.MQTTBroker != "" {
		pub, err := notification.NewMQTTPublisher(notification.MQTTConfig{
			Broker:         cfg.MQTTBroker,
			ClientID:       cfg.MQTTClientID,
			Username:       cfg.MQTTUsername,
			Password:       cfg.MQTTPassword,
			QoS:            1,
			ConnectTimeout: 5 * time.Second,
		})
		if err != nil {
			logger.Error().Err(err).Str("broker", cfg.MQTTBroker).Msg("alert notifications disabled")
		} else {
			deps.onClose(pub.Close)
			opts.AlertEvents = alert.NewNotifier(pub, cfg.MQTTTopicPrefix, logger)
			logger.Info().Str("broker", cfg.MQTTBroker).Msg("alert notifications enabled")
		}
	}

	return opts, deps, nil
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, deps, err := buildOptions(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open dependencies")
		return err
	}
	defer deps.Close()

	app := server.New(logger, opts)
	for _, r := range app.Routes() {
		logger.Info().Str("method", r.Method).Str("path", r.Path).Msg("route")
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Str("version", cfg.AppVersion).Msg("starting server")
		if err := app.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Echo.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Interface("records", app.Store.Counts()).Msg("server stopped")
	return nil
}
