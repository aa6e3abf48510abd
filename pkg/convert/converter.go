package convert

import (
	"fmt"
	"math"

	"github.com/bft-labs/sizeconv/internal/domain"
)

// ResolutionProvider supplies the resolution used when a call does not
// specify one. *resolution.Detector satisfies it.
type ResolutionProvider interface {
	Detect() float64
}

// Converter performs unit conversions. It holds no state of its own beyond
// the provider, and is safe for concurrent use if the provider is.
type Converter struct {
	provider ResolutionProvider
}

// New creates a Converter backed by provider.
func New(provider ResolutionProvider) *Converter {
	return &Converter{provider: provider}
}

// Convert converts v from one unit to another.
func (c *Converter) Convert(v float64, from, to domain.Unit, opts ...Option) (float64, error) {
	return c.convert(v, from, to, newCallOptions(opts))
}

// MillimetersToPixels returns mm * dpi / 25.4, rounded up unless Direct.
func (c *Converter) MillimetersToPixels(mm float64, opts ...Option) (float64, error) {
	return c.Convert(mm, domain.Millimeter, domain.Pixel, opts...)
}

// PixelsToMillimeters returns px * 25.4 / dpi.
func (c *Converter) PixelsToMillimeters(px float64, opts ...Option) (float64, error) {
	return c.Convert(px, domain.Pixel, domain.Millimeter, opts...)
}

// PointsToPixels returns pt * dpi / 72, rounded up unless Direct.
func (c *Converter) PointsToPixels(pt float64, opts ...Option) (float64, error) {
	return c.Convert(pt, domain.Point, domain.Pixel, opts...)
}

// PixelsToPoints returns px * 72 / dpi.
func (c *Converter) PixelsToPoints(px float64, opts ...Option) (float64, error) {
	return c.Convert(px, domain.Pixel, domain.Point, opts...)
}

// MillimetersToPoints returns mm * 72 / 25.4. No resolution is involved.
func (c *Converter) MillimetersToPoints(mm float64) (float64, error) {
	return c.Convert(mm, domain.Millimeter, domain.Point)
}

// PointsToMillimeters returns pt * 25.4 / 72. No resolution is involved.
func (c *Converter) PointsToMillimeters(pt float64) (float64, error) {
	return c.Convert(pt, domain.Point, domain.Millimeter)
}

// Resolution returns the resolution a call with opts would use.
func (c *Converter) Resolution(opts ...Option) (float64, error) {
	return c.resolve(newCallOptions(opts))
}

func (c *Converter) convert(v float64, from, to domain.Unit, o callOptions) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("%w: unsupported conversion %s to %s", domain.ErrInvalidArgument, from, to)
	}
	if err := domain.ValidateMagnitude(domain.ValueName(from), v); err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}

	r := ratios[unitPair{from, to}]
	var dpi float64
	if r.needsResolution() {
		var err error
		if dpi, err = c.resolve(o); err != nil {
			return 0, err
		}
	}

	out := r.apply(v, dpi)
	if r.toPixels && !o.direct {
		out = math.Ceil(out)
	}
	return out, nil
}

// resolve picks the explicit resolution if one was given, otherwise asks the
// provider, and validates the result either way.
func (c *Converter) resolve(o callOptions) (float64, error) {
	dpi := o.resolution
	if !o.hasResolution {
		if c.provider == nil {
			dpi = domain.DefaultDPI
		} else {
			dpi = c.provider.Detect()
		}
	}
	if err := domain.ValidateResolution(dpi); err != nil {
		return 0, err
	}
	return dpi, nil
}
