package domain

import (
	"fmt"
	"strings"
)

// Fixed ratios between physical units.
const (
	// MillimetersPerInch is the number of millimeters in one inch.
	MillimetersPerInch = 25.4

	// PointsPerInch is the number of typographic points in one inch.
	PointsPerInch = 72.0
)

// Named resolutions in dots per inch.
const (
	ScreenDPI  = 96.0
	PrintDPI   = 300.0
	HighResDPI = 600.0

	// DefaultDPI is used whenever display detection fails.
	DefaultDPI = ScreenDPI
)

// Unit identifies a length unit.
type Unit int

const (
	// Millimeter is a physical unit, 25.4 per inch.
	Millimeter Unit = iota + 1
	// Point is a physical unit, 72 per inch.
	Point
	// Pixel depends on the resolution of the output surface.
	Pixel
)

// String returns the lowercase name of the unit.
func (u Unit) String() string {
	switch u {
	case Millimeter:
		return "millimeter"
	case Point:
		return "point"
	case Pixel:
		return "pixel"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Symbol returns the short suffix conventionally written after a value.
func (u Unit) Symbol() string {
	switch u {
	case Millimeter:
		return "mm"
	case Point:
		return "pt"
	case Pixel:
		return "px"
	default:
		return "?"
	}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u >= Millimeter && u <= Pixel
}

// ParseUnit maps a unit name or symbol to a Unit. Matching is case-insensitive.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeter, nil
	case "pt", "point", "points":
		return Point, nil
	case "px", "pixel", "pixels":
		return Pixel, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", s)
	}
}

// Measurement is a magnitude paired with its unit.
// Negative magnitudes are accepted and pass through arithmetic unchanged.
type Measurement struct {
	Value float64
	Unit  Unit
}

// String formats the measurement as e.g. "25.4mm".
func (m Measurement) String() string {
	return fmt.Sprintf("%g%s", m.Value, m.Unit.Symbol())
}
