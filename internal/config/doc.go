// Package config handles loading and parsing Cellar configuration files.
//
// # Overview
//
// This package reads Cellar's TOML configuration to discover which brew
// executable to wrap and where runtime files live. Cellar is designed
// to work with no configuration at all; the file and every field in it
// are optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cellar/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Environment overrides apply last
//
// # Default Values
//
//   - Config file: ~/.config/cellar/config.toml
//   - Brew executable: brew (resolved via PATH)
//   - Cache directory: ~/.cache/cellar
//   - Lock file: <cache_dir>/cellar.lock
//   - Debug log: <cache_dir>/debug.log
//
// # TOML Format
//
// Example config.toml:
//
//	brew_bin = "/opt/homebrew/bin/brew"
//	cache_dir = "~/.cache/cellar"
//
// Both fields are optional. Tilde expansion is performed automatically
// for cache_dir and for brew_bin values that start with a tilde; a bare
// brew_bin name stays a PATH lookup.
//
// # Environment Overrides
//
//   - CELLAR_BREW replaces the brew executable after the file is read
//   - CELLAR_DEBUG, when non-empty, enables the debug log
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors,
// and TOML parsing errors. A missing config file is NOT an error;
// defaults are used instead so Cellar works out-of-the-box.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	client := brew.NewClient(cfg.BrewBin, nil)
//
// The config package is read-only and stateless. It loads configuration
// once at startup and returns an immutable Config struct.
package config
