package convert

import (
	"math"

	"github.com/bft-labs/sizeconv/internal/domain"
)

// PrintPointsToScreenPixels converts a font size given in points for a
// printer into an on-screen pixel size:
//
//	px = (points / 72) * screen * (screen / print)
//
// screen is the provider's resolution and print defaults to 300 DPI. The
// result is rounded half up to two decimals. An explicit WithResolution
// overrides the screen resolution.
func (c *Converter) PrintPointsToScreenPixels(points float64, opts ...Option) (float64, error) {
	return c.printToScreen(points, newCallOptions(opts))
}

// PrintPointsToScreenPixelsBatch applies PrintPointsToScreenPixels to each
// value with the same print resolution.
func (c *Converter) PrintPointsToScreenPixelsBatch(points []float64, opts ...Option) ([]float64, error) {
	o := newCallOptions(opts)
	return mapBatch(points, func(v float64) (float64, error) {
		return c.printToScreen(v, o)
	})
}

func (c *Converter) printToScreen(points float64, o callOptions) (float64, error) {
	if err := domain.ValidatePositive("print font size", points); err != nil {
		return 0, err
	}
	if err := domain.ValidatePositive("print resolution", o.printDPI); err != nil {
		return 0, err
	}
	screen, err := c.resolve(o)
	if err != nil {
		return 0, err
	}

	inches := points / domain.PointsPerInch
	scale := screen / o.printDPI
	return roundHalfUp(inches*screen*scale, 2), nil
}

func roundHalfUp(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(v*p+0.5) / p
}
