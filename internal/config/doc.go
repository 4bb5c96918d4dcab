// Package config loads, normalizes, and validates dronesrt configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts) and
// reads TOML files from the first location that exists: an explicit path,
// ~/.config/dronesrt/config.toml, then ./dronesrt.toml. The Config type holds
// the default field selection, output naming and logging settings.
//
// Always obtain settings through this package so commands receive trimmed,
// lowercased values and clear validation errors.
package config
