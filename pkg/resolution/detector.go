package resolution

import (
	"fmt"
	"math"
	"sync"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/log"
)

// Source tells where a detected resolution came from.
type Source int

const (
	// SourceProbe means the probe produced a usable measurement.
	SourceProbe Source = iota + 1
	// SourceFallback means probing failed and the fallback was used.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceProbe:
		return "probe"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Detection is the outcome of one probe run, as reported by Last.
type Detection struct {
	DPI    float64
	Source Source
	// Err is set when Source is SourceFallback.
	Err error
}

// Info is a snapshot of the detector state and the fixed constants.
type Info struct {
	Current       float64 `json:"current"`
	DefaultPrint  float64 `json:"default_print"`
	PointsPerInch float64 `json:"points_per_inch"`
}

// Detector measures the display resolution once and caches the result.
// It is safe for concurrent use.
type Detector struct {
	mu     sync.Mutex
	cached *Detection

	probe    Probe
	logger   log.Logger
	fallback float64
}

// New creates a Detector with an empty cache.
func New(opts ...Option) *Detector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Detector{
		probe:    o.probe,
		logger:   o.logger,
		fallback: o.fallback,
	}
}

// Detect returns the cached resolution, probing the display first if the
// cache is empty. It always returns a positive value.
func (d *Detector) Detect() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil {
		return d.cached.DPI
	}

	det := d.run()
	if det.Source == SourceFallback {
		d.logger.Warn("display resolution detection failed, using default",
			log.Float64("dpi", det.DPI),
			log.Err(det.Err),
		)
	} else {
		d.logger.Debug("display resolution detected", log.Float64("dpi", det.DPI))
	}
	d.cached = &det
	return det.DPI
}

// Reset clears the cache. The next Detect probes again.
func (d *Detector) Reset() {
	d.mu.Lock()
	d.cached = nil
	d.mu.Unlock()
}

// Last returns the cached detection without probing. The second result is
// false when nothing has been detected since creation or the last Reset.
func (d *Detector) Last() (Detection, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached == nil {
		return Detection{}, false
	}
	return *d.cached, true
}

// Info returns the current resolution alongside the fixed defaults.
// It triggers detection if nothing is cached.
func (d *Detector) Info() Info {
	return Info{
		Current:       d.Detect(),
		DefaultPrint:  domain.PrintDPI,
		PointsPerInch: domain.PointsPerInch,
	}
}

// run probes the display. Callers hold d.mu.
func (d *Detector) run() Detection {
	m, err := d.measure()
	if err != nil {
		return Detection{DPI: d.fallback, Source: SourceFallback, Err: err}
	}

	dpi := m.DPI()
	if math.IsNaN(dpi) || math.IsInf(dpi, 0) || dpi <= 0 {
		return Detection{
			DPI:    d.fallback,
			Source: SourceFallback,
			Err: fmt.Errorf("%w: unusable measurement %g px/in x %g",
				domain.ErrDetectionFailed, m.PixelsPerInch, m.DeviceScale),
		}
	}
	return Detection{DPI: dpi, Source: SourceProbe}
}

// measure calls the probe, turning a panic into an error.
func (d *Detector) measure() (m Measurement, err error) {
	if d.probe == nil {
		return Measurement{}, fmt.Errorf("%w: no probe configured", domain.ErrDetectionFailed)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: probe panicked: %v", domain.ErrDetectionFailed, r)
		}
	}()
	return d.probe.Measure()
}
