package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the launcher settings Cellar reads at startup.
type Config struct {
	BrewBin  string // brew executable; bare names resolve via PATH
	CacheDir string // lock file and debug log location
}

const (
	defaultConfigPath = "~/.config/cellar/config.toml"
	defaultCacheDir   = "~/.cache/cellar"
	defaultBrewBin    = "brew"
)

// Environment overrides. EnvBrew replaces the brew executable, EnvDebug
// enables the Bubble Tea debug log.
const (
	EnvBrew  = "CELLAR_BREW"
	EnvDebug = "CELLAR_DEBUG"
)

// Load locates and parses the config, falling back to defaults when
// missing. Environment overrides apply on top of the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{BrewBin: defaultBrewBin, CacheDir: mustExpand(defaultCacheDir)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BrewBin  string `toml:"brew_bin"`
		CacheDir string `toml:"cache_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BrewBin); v != "" {
		// Only expand paths; a bare name stays a PATH lookup.
		if strings.HasPrefix(v, "~") {
			v = mustExpand(v)
		}
		cfg.BrewBin = v
	}
	if v := strings.TrimSpace(raw.CacheDir); v != "" {
		cfg.CacheDir = mustExpand(v)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBrew)); v != "" {
		c.BrewBin = v
	}
}

// Debug reports whether the debug log is enabled.
func Debug() bool {
	return strings.TrimSpace(os.Getenv(EnvDebug)) != ""
}

// DebugLogPath returns where the debug log is written.
func (c Config) DebugLogPath() string {
	if strings.TrimSpace(c.CacheDir) == "" {
		return filepath.Join(mustExpand(defaultCacheDir), "debug.log")
	}
	return filepath.Join(c.CacheDir, "debug.log")
}

// LockPath returns the single-instance lock file path.
func (c Config) LockPath() string {
	if strings.TrimSpace(c.CacheDir) == "" {
		return filepath.Join(mustExpand(defaultCacheDir), "cellar.lock")
	}
	return filepath.Join(c.CacheDir, "cellar.lock")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
