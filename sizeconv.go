// Package sizeconv converts lengths between millimeters, points and pixels.
//
// Example usage:
//
//	conv, detector := sizeconv.New(sizeconv.StaticProbe(96, 2))
//	px, err := conv.MillimetersToPixels(25.4)           // 192, detected
//	px, err = conv.MillimetersToPixels(25.4,
//	    convert.WithResolution(300), convert.Direct())  // 300
//	detector.Reset()                                    // re-probe on next use
package sizeconv

import (
	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/internal/probe"
	"github.com/bft-labs/sizeconv/pkg/convert"
	"github.com/bft-labs/sizeconv/pkg/log"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// Converter performs the unit conversions.
type Converter = convert.Converter

// Detector detects and caches the display resolution.
type Detector = resolution.Detector

// ValidationError is returned for non-finite magnitudes and non-positive
// resolutions.
type ValidationError = domain.ValidationError

// Unit identifies millimeters, points or pixels.
type Unit = domain.Unit

// Supported units.
const (
	Millimeter = domain.Millimeter
	Point      = domain.Point
	Pixel      = domain.Pixel
)

// Named resolutions.
const (
	ScreenDPI  = domain.ScreenDPI
	PrintDPI   = domain.PrintDPI
	HighResDPI = domain.HighResDPI
)

// ErrInvalidArgument is wrapped by every ValidationError.
var ErrInvalidArgument = domain.ErrInvalidArgument

// New returns a Converter backed by a fresh Detector using p.
// A nil probe makes every detection fall back to 96 DPI.
func New(p resolution.Probe, opts ...resolution.Option) (*Converter, *Detector) {
	if p != nil {
		opts = append([]resolution.Option{resolution.WithProbe(p)}, opts...)
	}
	d := resolution.New(opts...)
	return convert.New(d), d
}

// NewWithLogger is New with fallback warnings sent to logger.
func NewWithLogger(p resolution.Probe, logger log.Logger) (*Converter, *Detector) {
	return New(p, resolution.WithLogger(logger))
}

// StaticProbe reports a fixed pixel density and device pixel ratio.
func StaticProbe(pixelsPerInch, deviceScale float64) resolution.Probe {
	return probe.Static{PixelsPerInch: pixelsPerInch, DeviceScale: deviceScale}
}

// ProfileProbe reads the pixel density from a TOML display profile.
func ProfileProbe(path string) resolution.Probe {
	return probe.Profile{Path: path}
}

// EDIDProbe reads the pixel density of the first connected monitor from
// /sys/class/drm.
func EDIDProbe(deviceScale float64) resolution.Probe {
	return probe.NewEDID(probe.DefaultDRMDir, deviceScale)
}
