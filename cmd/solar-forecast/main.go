package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/logging"
	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/internal/simulation"
	"github.com/iwvelando/solar-forecast/internal/store"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/output"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// assignments collects repeated -set KEY=VALUE flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected KEY=VALUE, got %q", value)
	}
	*a = append(*a, value)
	return nil
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	var sets assignments
	flag.Var(&sets, "set", "store a settings override KEY=VALUE in the settings database (repeatable)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	ctx := context.Background()
	if len(sets) > 0 {
		if err := storeOverrides(ctx, conf.SettingsDatabase, sets); err != nil {
			logger.Fatal("failed to store settings overrides",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Settings precedence: config file, then settings database, then environment.
	if err := godotenv.Load(constants.DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load environment file",
			zap.String("op", "main"),
			zap.String("file", constants.DefaultEnvFile),
			zap.Error(err),
		)
	}
	stored, err := store.LoadFile(ctx, conf.SettingsDatabase)
	if err != nil {
		logger.Fatal("failed to load settings database",
			zap.String("op", "main"),
			zap.String("path", conf.SettingsDatabase),
			zap.Error(err),
		)
	}
	conf.Settings = settings.Merge(conf.Settings, stored, settings.FromEnv(settings.KnownKeys()))

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	reports := simulation.Run(logger, *conf)

	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, reports)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, reports)
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func storeOverrides(ctx context.Context, path string, sets assignments) error {
	if path == "" {
		return fmt.Errorf("-set requires settingsDatabase in the configuration")
	}

	s, err := store.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	for _, kv := range sets {
		key, value, _ := strings.Cut(kv, "=")
		if strings.TrimSpace(value) == "" {
			if err := s.Delete(ctx, key); err != nil {
				return err
			}
			continue
		}
		if err := s.Put(ctx, key, strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}
