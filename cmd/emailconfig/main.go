package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/dewey/gazelle-weekly/internal/buildconfig"
	"github.com/dewey/gazelle-weekly/internal/config"
	"github.com/dewey/gazelle-weekly/internal/export"
	"github.com/dewey/gazelle-weekly/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "emailconfig: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("emailconfig", "Renders the email template build configuration for the template build engine")
	configFile := app.Flag("config", "Path to YAML settings file").String()
	format := app.Flag("format", "Output format (json or yaml)").String()
	output := app.Flag("output", "Output file, '-' for stdout").Short('o').String()
	indent := app.Flag("indent", "Indentation width (0 for compact JSON)").Default("-1").Int()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").String()

	if _, err := app.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Format:     format,
		Output:     output,
		LogLevel:   logLevel,
	}
	if *indent >= 0 {
		overrides.Indent = indent
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	buildCfg := buildconfig.Default()
	if err := buildCfg.Validate(); err != nil {
		logger.Error("invalid build configuration", zap.Error(err))
		return err
	}

	exp := export.New(cfg, logger, export.WithStdout(stdout))
	if err := exp.Export(buildCfg); err != nil {
		logger.Error("export failed", zap.Error(err))
		return err
	}
	return nil
}
