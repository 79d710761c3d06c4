package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dewey/gazelle-weekly/internal/buildconfig"
	"github.com/dewey/gazelle-weekly/internal/config"
)

// ErrUnsupportedFormat is returned for output formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter writes a BuildConfig using the resolved exporter settings.
type Exporter struct {
	format string
	indent int
	output string
	stdout io.Writer
	logger *zap.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStdout overrides the writer used when the output is "-".
func WithStdout(w io.Writer) Option {
	return func(e *Exporter) {
		e.stdout = w
	}
}

// New builds an Exporter from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Exporter{
		format: cfg.Format,
		indent: cfg.Indent,
		output: cfg.Output,
		stdout: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders cfg and writes it to the configured output. The year is
// resolved at this point.
func (e *Exporter) Export(cfg buildconfig.BuildConfig) error {
	data, err := Render(cfg, e.format, e.indent)
	if err != nil {
		return err
	}

	if e.output == config.StdoutOutput {
		if _, err := e.stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		e.logger.Debug("configuration written", zap.String("output", "stdout"), zap.Int("bytes", len(data)))
		return nil
	}

	if err := writeFile(e.output, data); err != nil {
		return err
	}
	e.logger.Info("configuration written",
		zap.String("output", e.output),
		zap.String("format", e.format),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Render encodes cfg as json or yaml. Indent 0 produces compact JSON; YAML
// falls back to two spaces.
func Render(cfg buildconfig.BuildConfig, format string, indent int) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return renderJSON(cfg, indent)
	case "yaml", "yml":
		return renderYAML(cfg, indent)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderJSON(cfg buildconfig.BuildConfig, indent int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(cfg, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func renderYAML(cfg buildconfig.BuildConfig, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = 2
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
