package resolution

import (
	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/log"
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	probe    Probe
	logger   log.Logger
	fallback float64
}

func defaultOptions() options {
	return options{
		logger:   log.NewNoopLogger(),
		fallback: domain.DefaultDPI,
	}
}

// WithProbe sets the probe used to measure the display.
// Without a probe every detection falls back.
func WithProbe(p Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}

// WithLogger sets the logger that receives fallback warnings.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFallback overrides the resolution used when probing fails.
// Non-positive values are ignored.
func WithFallback(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.fallback = dpi
		}
	}
}
