package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is wrapped by every ValidationError.
	ErrInvalidArgument = errors.New("sizeconv: invalid argument")

	// ErrDetectionFailed is returned by probes that cannot measure the display.
	// It never reaches callers of a conversion.
	ErrDetectionFailed = errors.New("sizeconv: resolution detection failed")
)

// ValidationError reports an argument rejected before any arithmetic ran.
type ValidationError struct {
	// Arg names the offending argument, e.g. "millimeter value" or "resolution".
	Arg    string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sizeconv: %s %v %s", e.Arg, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// ValueName returns the argument name used in validation errors for a
// magnitude expressed in u.
func ValueName(u Unit) string {
	return u.String() + " value"
}

// ValidateMagnitude checks that v is a finite number. Sign is not checked.
func ValidateMagnitude(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Arg: name, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

// ValidatePositive checks that v is a finite number strictly greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Arg: name, Value: v, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return &ValidationError{Arg: name, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

// ValidateResolution checks a resolved DPI value.
func ValidateResolution(dpi float64) error {
	return ValidatePositive("resolution", dpi)
}
