package probe

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// Chain tries each probe in order and returns the first usable measurement.
type Chain []resolution.Probe

// Measure returns the first measurement with a positive DPI. If every probe
// fails, the returned error lists all of them.
func (c Chain) Measure() (resolution.Measurement, error) {
	var result *multierror.Error
	for i, p := range c {
		m, err := p.Measure()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("probe %d: %w", i, err))
			continue
		}
		if !(m.DPI() > 0) {
			result = multierror.Append(result, fmt.Errorf("probe %d: non-positive dpi %g", i, m.DPI()))
			continue
		}
		return m, nil
	}
	if result == nil {
		return resolution.Measurement{}, fmt.Errorf("%w: no probes configured", domain.ErrDetectionFailed)
	}
	return resolution.Measurement{}, result.ErrorOrNil()
}
