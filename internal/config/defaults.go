package config

const (
	defaultConfigPath = "~/.config/dronesrt/config.toml"
	projectConfigName = "dronesrt.toml"
	defaultSuffix     = "_custom"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// BackupExtension is appended to an output path to name its backup copy.
const BackupExtension = ".bak"

// Default returns a Config populated with repository defaults. No telemetry
// field is enabled; a run must select at least one.
func Default() Config {
	return Config{
		Output: Output{
			Suffix: defaultSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
