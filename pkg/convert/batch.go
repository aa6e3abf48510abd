package convert

import (
	"fmt"

	"github.com/bft-labs/sizeconv/internal/domain"
)

// ConvertBatch converts every value with the same units and options.
// The first invalid element aborts the batch; no partial result is returned.
func (c *Converter) ConvertBatch(values []float64, from, to domain.Unit, opts ...Option) ([]float64, error) {
	o := newCallOptions(opts)
	return mapBatch(values, func(v float64) (float64, error) {
		return c.convert(v, from, to, o)
	})
}

// MillimetersToPixelsBatch applies MillimetersToPixels to each value.
func (c *Converter) MillimetersToPixelsBatch(mm []float64, opts ...Option) ([]float64, error) {
	return c.ConvertBatch(mm, domain.Millimeter, domain.Pixel, opts...)
}

// PixelsToMillimetersBatch applies PixelsToMillimeters to each value.
func (c *Converter) PixelsToMillimetersBatch(px []float64, opts ...Option) ([]float64, error) {
	return c.ConvertBatch(px, domain.Pixel, domain.Millimeter, opts...)
}

// PointsToPixelsBatch applies PointsToPixels to each value.
func (c *Converter) PointsToPixelsBatch(pt []float64, opts ...Option) ([]float64, error) {
	return c.ConvertBatch(pt, domain.Point, domain.Pixel, opts...)
}

// PixelsToPointsBatch applies PixelsToPoints to each value.
func (c *Converter) PixelsToPointsBatch(px []float64, opts ...Option) ([]float64, error) {
	return c.ConvertBatch(px, domain.Pixel, domain.Point, opts...)
}

func mapBatch(values []float64, fn func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}
