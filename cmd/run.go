package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shoe-design-api/config"
	"shoe-design-api/internal/api/middleware"
	"shoe-design-api/internal/app"
	"shoe-design-api/internal/logger"
	"shoe-design-api/internal/server"
)

type runFlags struct {
	configDir string // directory holding config.yaml
	port      int    // overrides server.port when set
}

func init() {
	flags := new(runFlags)

	runCommand := &cobra.Command{
		Use:   "run [-c config_dir] [-p port]",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}
	runCommand.Flags().StringVarP(&flags.configDir, "config", "c", "", "directory containing config.yaml")
	runCommand.Flags().IntVarP(&flags.port, "port", "p", 0, "listen port, overrides server.port")

	rootCmd.AddCommand(runCommand)
}

func loadConfig(flags *runFlags) (*config.Config, error) {
	var paths []string
	if flags.configDir != "" {
		paths = append(paths, flags.configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if flags.port != 0 {
		cfg.Server.Port = flags.port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(parent context.Context, flags *runFlags) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if cfg.File != "" {
		appLogger.Info("Configuration loaded", zap.String("file", cfg.File))
	}

	// --- Initialize Tracing ---
	var shutdownTracing func(context.Context) error
	if cfg.Tracing.Enabled {
		tp, err := middleware.InitTracing(parent, cfg.Tracing)
		if err != nil {
			appLogger.Warn("Failed to initialize tracing, continuing without it", zap.Error(err))
		} else {
			appLogger.Info("Tracing initialized",
				zap.String("endpoint", cfg.Tracing.Endpoint),
				zap.Float64("sample_rate", cfg.Tracing.SampleRate))
			shutdownTracing = func(ctx context.Context) error {
				if err := tp.ForceFlush(ctx); err != nil {
					appLogger.Warn("Failed to flush spans", zap.Error(err))
				}
				return tp.Shutdown(ctx)
			}
		}
	}

	application, err := app.New(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down")

		application.ShuttingDown.Store(true)
		if d := cfg.Server.ReadinessDrainDelay; d > 0 {
			appLogger.Info("Waiting for load balancers to drain", zap.Duration("delay", d))
			time.Sleep(d)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		if shutdownTracing != nil {
			if err := shutdownTracing(shutdownCtx); err != nil {
				appLogger.Error("Failed to shutdown tracing", zap.Error(err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	appLogger.Info("Application gracefully stopped")
	return nil
}
