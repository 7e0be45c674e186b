// Package config provides configuration types and defaults for rcstat.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/npratt/rcstat/internal/rcclient"
)

// Path styles for transfer path normalization.
const (
	PathStyleAuto        = "auto"
	PathStyleDriveLetter = "drive-letter"
	PathStylePosix       = "posix"
)

// Config holds all configuration for rcstat.
type Config struct {
	Engine      EngineConfig      `yaml:"engine" mapstructure:"engine"`
	Watch       WatchConfig       `yaml:"watch" mapstructure:"watch"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// EngineConfig describes how to reach the sync daemon's remote-control API.
type EngineConfig struct {
	APIAddress string        `yaml:"api_address" mapstructure:"api_address"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`       // 0 = transport default (none)
	PathStyle  string        `yaml:"path_style" mapstructure:"path_style"` // auto, drive-letter or posix
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Interval     time.Duration `yaml:"interval" mapstructure:"interval"`
	MaxTransfers int           `yaml:"max_transfers" mapstructure:"max_transfers"` // In-flight transfers shown in the TUI
}

// PathsConfig holds file paths.
type PathsConfig struct {
	LogDir string `yaml:"log_dir" mapstructure:"log_dir"` // TUI debug log directory (empty = os temp dir)
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// DefaultAPIAddress is where the daemon's remote-control API listens by default.
const DefaultAPIAddress = "http://127.0.0.1:5572"

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			APIAddress: DefaultAPIAddress,
			Timeout:    0,
			PathStyle:  PathStyleAuto,
		},
		Watch: WatchConfig{
			Interval:     time.Second,
			MaxTransfers: 8,
		},
		Paths: PathsConfig{
			LogDir: "",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   false,
		},
	}
}

// DriveLetterPaths reports whether completed transfer paths should be normalized.
func (e EngineConfig) DriveLetterPaths() bool {
	switch e.PathStyle {
	case PathStyleDriveLetter:
		return true
	case PathStylePosix:
		return false
	default:
		return rcclient.DriveLetterPlatform()
	}
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Engine.APIAddress)
	if err != nil {
		return fmt.Errorf("engine.api_address %q: %w", c.Engine.APIAddress, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("engine.api_address %q: scheme must be http or https", c.Engine.APIAddress)
	}
	if u.Host == "" {
		return fmt.Errorf("engine.api_address %q: missing host", c.Engine.APIAddress)
	}

	if c.Engine.Timeout < 0 {
		return fmt.Errorf("engine.timeout must not be negative, got %v", c.Engine.Timeout)
	}

	switch c.Engine.PathStyle {
	case PathStyleAuto, PathStyleDriveLetter, PathStylePosix:
	default:
		return fmt.Errorf("engine.path_style %q: must be one of %s, %s, %s",
			c.Engine.PathStyle, PathStyleAuto, PathStyleDriveLetter, PathStylePosix)
	}

	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %v", c.Watch.Interval)
	}
	if c.Watch.MaxTransfers < 0 {
		return fmt.Errorf("watch.max_transfers must not be negative, got %d", c.Watch.MaxTransfers)
	}

	return nil
}
