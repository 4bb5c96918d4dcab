package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dronesrt/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file lives in a per-test
// temp directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "dronesrt.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFields sets the default field selection.
func WithFields(fields config.Fields) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Fields = fields
	}
}

// WithSuffix overrides the output suffix.
func WithSuffix(suffix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Suffix = suffix
	}
}

// WithBackup toggles output backups.
func WithBackup(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Backup = enabled
	}
}

// WithoutLogFile keeps log output on stderr only.
func WithoutLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = ""
	}
}

// WriteConfig encodes cfg as TOML into dir and returns the file path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "dronesrt.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
