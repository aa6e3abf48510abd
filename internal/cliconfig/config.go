package cliconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/internal/probe"
)

// Probe selection values.
const (
	ProbeAuto    = "auto"
	ProbeEDID    = "edid"
	ProbeProfile = "profile"
	ProbeStatic  = "static"
	ProbeNone    = "none"
)

// Config holds CLI configuration for sizeconv.
type Config struct {
	// DPI is the explicit resolution. Zero means detect, and an explicit zero
	// from the environment or config file overrides an earlier value.
	DPI      float64
	PrintDPI float64
	Direct   bool

	Probe         string
	PixelsPerInch float64
	DeviceScale   float64
	DRMDir        string
	ProfilePath   string
	FallbackDPI   float64

	LogLevel string
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		PrintDPI:    domain.PrintDPI,
		Probe:       ProbeAuto,
		DeviceScale: 1,
		DRMDir:      probe.DefaultDRMDir,
		ProfilePath: DefaultProfilePath(),
		FallbackDPI: domain.DefaultDPI,
		LogLevel:    "warn",
		Debounce:    100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DPI, validation.Min(0.0)),
		validation.Field(&c.PrintDPI, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&c.Probe, validation.Required,
			validation.In(ProbeAuto, ProbeEDID, ProbeProfile, ProbeStatic, ProbeNone)),
		validation.Field(&c.PixelsPerInch, validation.Min(0.0),
			validation.When(c.Probe == ProbeStatic, validation.Required)),
		validation.Field(&c.DeviceScale, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&c.ProfilePath, validation.When(c.Probe == ProbeProfile, validation.Required)),
		validation.Field(&c.FallbackDPI, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
		validation.Field(&c.Debounce, validation.Required, validation.Min(time.Duration(0)).Exclusive()),
	)
}

// DefaultProfilePath returns ~/.sizeconv/display.toml, or "" if the home
// directory is unknown.
func DefaultProfilePath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sizeconv", "display.toml")
	}
	return ""
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloatPtr sets a float64 value whenever one is present, including zero,
// and the flag is not changed. Used for settings where zero is meaningful.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return &ParseError{Flag: flag, Err: err}
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination if
// positive. Used for environment variables.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &ParseError{Flag: flag, Err: err}
	}
	s.setFloat(flag, f, dst)
	return nil
}

// setPresentFloatFromString parses a string to float64 and sets the
// destination for any parsed value, including zero and negatives, which
// Validate rejects later where they are not allowed.
func (s *configSetter) setPresentFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &ParseError{Flag: flag, Err: err}
	}
	s.setFloatPtr(flag, &f, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// ParseError reports a configuration value that could not be parsed.
type ParseError struct {
	Flag string
	Err  error
}

func (e *ParseError) Error() string {
	return "parse " + e.Flag + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
