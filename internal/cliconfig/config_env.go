package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SIZECONV_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setPresentFloatFromString("dpi", os.Getenv("SIZECONV_DPI"), &cfg.DPI); err != nil {
		return err
	}
	if err := s.setFloatFromString("print-dpi", os.Getenv("SIZECONV_PRINT_DPI"), &cfg.PrintDPI); err != nil {
		return err
	}
	s.setBoolFromString("direct", os.Getenv("SIZECONV_DIRECT"), &cfg.Direct)

	s.setString("probe", os.Getenv("SIZECONV_PROBE"), &cfg.Probe)
	if err := s.setFloatFromString("pixels-per-inch", os.Getenv("SIZECONV_PIXELS_PER_INCH"), &cfg.PixelsPerInch); err != nil {
		return err
	}
	if err := s.setFloatFromString("device-scale", os.Getenv("SIZECONV_DEVICE_SCALE"), &cfg.DeviceScale); err != nil {
		return err
	}
	s.setString("drm-dir", os.Getenv("SIZECONV_DRM_DIR"), &cfg.DRMDir)
	s.setString("profile", os.Getenv("SIZECONV_PROFILE"), &cfg.ProfilePath)
	if err := s.setFloatFromString("fallback-dpi", os.Getenv("SIZECONV_FALLBACK_DPI"), &cfg.FallbackDPI); err != nil {
		return err
	}

	s.setString("log-level", os.Getenv("SIZECONV_LOG_LEVEL"), &cfg.LogLevel)
	return s.setDuration("debounce", os.Getenv("SIZECONV_DEBOUNCE"), &cfg.Debounce)
}
