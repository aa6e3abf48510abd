package convert

import "github.com/bft-labs/sizeconv/internal/domain"

// Option tunes a single conversion call.
type Option func(*callOptions)

type callOptions struct {
	resolution    float64
	hasResolution bool
	direct        bool
	printDPI      float64
}

func newCallOptions(opts []Option) callOptions {
	o := callOptions{printDPI: domain.PrintDPI}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResolution uses dpi instead of the detected resolution.
func WithResolution(dpi float64) Option {
	return func(o *callOptions) {
		o.resolution = dpi
		o.hasResolution = true
	}
}

// Direct returns pixel results without rounding them up.
func Direct() Option {
	return func(o *callOptions) {
		o.direct = true
	}
}

// WithDirect sets the rounding policy from a flag, for callers that carry it
// as configuration.
func WithDirect(direct bool) Option {
	return func(o *callOptions) {
		o.direct = direct
	}
}

// WithPrintResolution sets the printer resolution used by
// PrintPointsToScreenPixels. The default is 300 DPI.
func WithPrintResolution(dpi float64) Option {
	return func(o *callOptions) {
		o.printDPI = dpi
	}
}
