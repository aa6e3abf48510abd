package convert

import (
	"math"

	"github.com/bft-labs/sizeconv/internal/domain"
)

// snapUlps is how far, in units of least precision, a pixel result may sit
// from a whole number and still be treated as that number.
const snapUlps = 4

type unitPair struct {
	from, to domain.Unit
}

// ratio describes one conversion. Exactly one of the formulas applies:
//
//	toPixels:   v * dpi / perInch
//	fromPixels: v * perInch / dpi
//	otherwise:  v * num / den
//
// Pixel results within a few ulps of a whole number are snapped to it, so
// 25.4mm at 96 DPI is 96px rather than 95.99999999999999 and 114.3mm at
// 72 DPI ceils to 324 rather than 325.
type ratio struct {
	toPixels   bool
	fromPixels bool
	perInch    float64
	num, den   float64
}

var ratios = map[unitPair]ratio{
	{domain.Millimeter, domain.Pixel}: {toPixels: true, perInch: domain.MillimetersPerInch},
	{domain.Pixel, domain.Millimeter}: {fromPixels: true, perInch: domain.MillimetersPerInch},
	{domain.Point, domain.Pixel}:      {toPixels: true, perInch: domain.PointsPerInch},
	{domain.Pixel, domain.Point}:      {fromPixels: true, perInch: domain.PointsPerInch},
	{domain.Millimeter, domain.Point}: {num: domain.PointsPerInch, den: domain.MillimetersPerInch},
	{domain.Point, domain.Millimeter}: {num: domain.MillimetersPerInch, den: domain.PointsPerInch},
}

func (r ratio) needsResolution() bool {
	return r.toPixels || r.fromPixels
}

func (r ratio) apply(v, dpi float64) float64 {
	switch {
	case r.toPixels:
		return snapToInteger(v * dpi / r.perInch)
	case r.fromPixels:
		return v * r.perInch / dpi
	default:
		return v * r.num / r.den
	}
}

// snapToInteger returns the nearest whole number if x is within snapUlps of it.
func snapToInteger(x float64) float64 {
	n := math.Round(x)
	if n == x || math.IsInf(n, 0) {
		return x
	}
	a := math.Abs(n)
	ulp := math.Nextafter(a, math.Inf(1)) - a
	if math.Abs(x-n) <= snapUlps*ulp {
		return n
	}
	return x
}
