package probe

import (
	"fmt"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// Static reports a fixed measurement, typically taken from configuration.
type Static struct {
	PixelsPerInch float64
	DeviceScale   float64
}

// Measure returns the configured values. A zero DeviceScale means 1.
func (s Static) Measure() (resolution.Measurement, error) {
	if s.PixelsPerInch <= 0 {
		return resolution.Measurement{}, fmt.Errorf("%w: static pixels per inch not set", domain.ErrDetectionFailed)
	}
	return resolution.Measurement{PixelsPerInch: s.PixelsPerInch, DeviceScale: scaleOrOne(s.DeviceScale)}, nil
}

func scaleOrOne(scale float64) float64 {
	if scale == 0 {
		return 1
	}
	return scale
}
