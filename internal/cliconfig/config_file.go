package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	DPI           *float64 `toml:"dpi"`
	PrintDPI      float64  `toml:"print_dpi"`
	Direct        *bool    `toml:"direct"`
	Probe         string   `toml:"probe"`
	PixelsPerInch float64  `toml:"pixels_per_inch"`
	DeviceScale   float64  `toml:"device_scale"`
	DRMDir        string   `toml:"drm_dir"`
	ProfilePath   string   `toml:"profile"`
	FallbackDPI   float64  `toml:"fallback_dpi"`
	LogLevel      string   `toml:"log_level"`
	Debounce      string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.sizeconv/config.toml if the user home
// directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sizeconv", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setFloatPtr("dpi", fc.DPI, &cfg.DPI)
	s.setFloat("print-dpi", fc.PrintDPI, &cfg.PrintDPI)
	s.setBool("direct", fc.Direct, &cfg.Direct)

	s.setString("probe", fc.Probe, &cfg.Probe)
	s.setFloat("pixels-per-inch", fc.PixelsPerInch, &cfg.PixelsPerInch)
	s.setFloat("device-scale", fc.DeviceScale, &cfg.DeviceScale)
	s.setString("drm-dir", fc.DRMDir, &cfg.DRMDir)
	s.setString("profile", fc.ProfilePath, &cfg.ProfilePath)
	s.setFloat("fallback-dpi", fc.FallbackDPI, &cfg.FallbackDPI)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
