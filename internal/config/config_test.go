package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FORMAT", "OUTPUT", "INDENT", "LOG_LEVEL"} {
		t.Setenv(envPrefix+key, "")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emailconfig.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg != defaultConfig() {
		t.Fatalf("expected defaults %+v, got %+v", defaultConfig(), cfg)
	}
	if cfg.Output != StdoutOutput {
		t.Fatalf("expected stdout output, got %s", cfg.Output)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAILCONFIG_FORMAT", " YAML ")
	t.Setenv("EMAILCONFIG_OUTPUT", "build/config.yaml")
	t.Setenv("EMAILCONFIG_INDENT", "4")
	t.Setenv("EMAILCONFIG_LOG_LEVEL", "debug")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Config{Format: "yaml", Output: "build/config.yaml", Indent: 4, LogLevel: "debug"}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadIgnoresInvalidEnvIndent(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAILCONFIG_INDENT", "wide")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Indent != defaultIndent {
		t.Fatalf("expected default indent, got %d", cfg.Indent)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAILCONFIG_FORMAT", "json")
	t.Setenv("EMAILCONFIG_OUTPUT", "from-env.json")
	t.Setenv("EMAILCONFIG_LOG_LEVEL", "error")

	path := writeConfigFile(t, "format: yaml\noutput: from-file.yaml\nindent: 0\n")
	output := "from-flag.yaml"

	cfg, err := Load(&CLIOverrides{ConfigFile: path, Output: &output})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Format != "yaml" {
		t.Fatalf("expected YAML file to override env format, got %s", cfg.Format)
	}
	if cfg.Output != output {
		t.Fatalf("expected flag to override output, got %s", cfg.Output)
	}
	if cfg.Indent != 0 {
		t.Fatalf("expected explicit zero indent from file, got %d", cfg.Indent)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env log level to survive, got %s", cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfigFile(t, "format: [json\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		clearEnv(t)
		format := "toml"
		if _, err := Load(&CLIOverrides{Format: &format}); err == nil {
			t.Fatalf("expected error for unsupported format")
		}
	})

	t.Run("indent out of range", func(t *testing.T) {
		clearEnv(t)
		indent := maxIndent + 1
		if _, err := Load(&CLIOverrides{Indent: &indent}); err == nil {
			t.Fatalf("expected error for indent")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		clearEnv(t)
		level := "verbose"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for log level")
		}
	})
}
