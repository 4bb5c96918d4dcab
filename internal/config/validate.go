package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. An empty [fields] selection
// is valid here; commands reject it once flags have been applied.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix %q must not contain path separators", c.Output.Suffix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// AnyField reports whether the [fields] section enables at least one field.
// The label toggle alone does not count.
func (f Fields) AnyField() bool {
	return f.Barometer || f.Ultrasonic || f.Date || f.Time || f.Duration || f.Speed
}
