package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/solar-forecast/internal/engine"
	"github.com/iwvelando/solar-forecast/internal/logging"
	"github.com/iwvelando/solar-forecast/internal/server"
	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/internal/store"
	"github.com/iwvelando/solar-forecast/internal/tariff"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/metrics"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(constants.DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load environment file",
			zap.String("op", "main"),
			zap.String("file", constants.DefaultEnvFile),
			zap.Error(err),
		)
	}
	stored, err := store.LoadFile(ctx, cfg.SettingsDatabase)
	if err != nil {
		logger.Fatal("failed to load settings database",
			zap.String("op", "main"),
			zap.String("path", cfg.SettingsDatabase),
			zap.Error(err),
		)
	}

	// Tariffs are resolved once at startup and shared by every request.
	tariffs := tariff.FromSettings(settings.Merge(cfg.Settings, stored, settings.FromEnv(settings.KnownKeys())))
	eng := engine.New(logger, tariffs)
	collector := metrics.NewCollector(constants.MetricsNamespace)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, eng, collector, cfg, version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	logger.Info("starting server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("tariffVersion", tariffs.Version),
		zap.Int64("maxBodySize", cfg.BodySizeBytes()),
		zap.Strings("allowedOrigins", cfg.AllowedOrigins),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("server stopped", zap.String("op", "main"))
}
