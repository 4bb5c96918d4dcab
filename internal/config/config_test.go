package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dronesrt/internal/config"
)

func TestLoadDefaultConfigWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "dronesrt", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Fields.AnyField() {
		t.Fatalf("expected no fields enabled by default, got %+v", cfg.Fields)
	}
	if cfg.Output.Suffix != "_custom" {
		t.Fatalf("unexpected suffix: %q", cfg.Output.Suffix)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "dronesrt.toml")

	type payload struct {
		Fields struct {
			Speed bool `toml:"speed"`
			Label bool `toml:"label"`
		} `toml:"fields"`
		Output struct {
			Suffix string `toml:"suffix"`
			Backup bool   `toml:"backup"`
		} `toml:"output"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
			File   string `toml:"file"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Fields.Speed = true
	custom.Fields.Label = true
	custom.Output.Suffix = "  _overlay "
	custom.Output.Backup = true
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Warning"
	custom.Logging.File = "~/logs/dronesrt.log"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if !cfg.Fields.Speed || !cfg.Fields.Label || cfg.Fields.Date {
		t.Fatalf("unexpected fields: %+v", cfg.Fields)
	}
	if cfg.Output.Suffix != "_overlay" || !cfg.Output.Backup {
		t.Fatalf("unexpected output section: %+v", cfg.Output)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}
	if cfg.Logging.File != filepath.Join(tempHome, "logs", "dronesrt.log") {
		t.Fatalf("expected expanded log file, got %q", cfg.Logging.File)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Output.Suffix != "_custom" {
		t.Fatalf("expected defaults, got %+v", cfg.Output)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dronesrt.toml")
	if err := os.WriteFile(path, []byte("[fields]\naltitude = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[fields]") {
		t.Fatalf("sample config missing fields section: %s", contents)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to be found")
	}
	if cfg.Fields.AnyField() {
		t.Fatalf("sample should not enable fields, got %+v", cfg.Fields)
	}
	if cfg.Output.Suffix != config.Default().Output.Suffix {
		t.Fatalf("sample suffix %q differs from default", cfg.Output.Suffix)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"suffix with separator", func(c *config.Config) { c.Output.Suffix = "out/x" }},
		{"unknown format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		input string
		want  string
	}{
		{"/flights/DJI_0001.SRT", "/flights/DJI_0001_custom.srt"},
		{"/flights/DJI_0001.srt", "/flights/DJI_0001_custom.srt"},
		{"track", "track_custom.srt"},
	}
	for _, tt := range tests {
		if got := cfg.OutputPath(tt.input); got != tt.want {
			t.Fatalf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFieldsAnyFieldIgnoresLabel(t *testing.T) {
	if (config.Fields{Label: true}).AnyField() {
		t.Fatal("label alone should not count as a field")
	}
	if !(config.Fields{Duration: true}).AnyField() {
		t.Fatal("duration should count as a field")
	}
}
