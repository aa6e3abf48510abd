package cliconfig

import (
	"github.com/bft-labs/sizeconv/internal/probe"
	"github.com/bft-labs/sizeconv/pkg/log"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// BuildProbe returns the probe selected by cfg.Probe, or nil for "none".
func BuildProbe(cfg Config) resolution.Probe {
	static := probe.Static{PixelsPerInch: cfg.PixelsPerInch, DeviceScale: cfg.DeviceScale}
	profile := probe.Profile{Path: cfg.ProfilePath}
	edid := probe.NewEDID(cfg.DRMDir, cfg.DeviceScale)

	switch cfg.Probe {
	case ProbeStatic:
		return static
	case ProbeProfile:
		return profile
	case ProbeEDID:
		return edid
	case ProbeNone:
		return nil
	}

	var chain probe.Chain
	if cfg.PixelsPerInch > 0 {
		chain = append(chain, static)
	}
	if cfg.ProfilePath != "" {
		chain = append(chain, profile)
	}
	return append(chain, edid)
}

// NewDetector builds a resolution detector from cfg.
func NewDetector(cfg Config, logger log.Logger) *resolution.Detector {
	opts := []resolution.Option{
		resolution.WithLogger(logger),
		resolution.WithFallback(cfg.FallbackDPI),
	}
	if p := BuildProbe(cfg); p != nil {
		opts = append(opts, resolution.WithProbe(p))
	}
	return resolution.New(opts...)
}
