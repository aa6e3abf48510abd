package resolution

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/log"
)

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(msg string, fields ...log.Field) {}
func (l *recordingLogger) Info(msg string, fields ...log.Field)  {}
func (l *recordingLogger) Error(msg string, fields ...log.Field) {}
func (l *recordingLogger) Warn(msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) warnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns)
}

type countingProbe struct {
	mu    sync.Mutex
	calls int
	m     Measurement
	err   error
}

func (p *countingProbe) Measure() (Measurement, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.m, p.err
}

func (p *countingProbe) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestDetector_MultipliesDeviceScale(t *testing.T) {
	d := New(WithProbe(&countingProbe{m: Measurement{PixelsPerInch: 96, DeviceScale: 2}}))
	assert.Equal(t, 192.0, d.Detect())
}

func TestDetector_CachesUntilReset(t *testing.T) {
	probe := &countingProbe{m: Measurement{PixelsPerInch: 110, DeviceScale: 1}}
	d := New(WithProbe(probe))

	assert.Equal(t, 110.0, d.Detect())
	assert.Equal(t, 110.0, d.Detect())
	assert.Equal(t, 1, probe.count(), "cached value must not re-probe")

	probe.mu.Lock()
	probe.m = Measurement{PixelsPerInch: 144, DeviceScale: 1}
	probe.mu.Unlock()

	assert.Equal(t, 110.0, d.Detect(), "stale value expected before reset")

	d.Reset()
	assert.Equal(t, 144.0, d.Detect())
	assert.Equal(t, 2, probe.count())
}

func TestDetector_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
	}{
		{name: "no probe", probe: nil},
		{name: "probe error", probe: &countingProbe{err: errors.New("no display")}},
		{name: "zero pixels", probe: &countingProbe{m: Measurement{PixelsPerInch: 0, DeviceScale: 1}}},
		{name: "zero scale", probe: &countingProbe{m: Measurement{PixelsPerInch: 96, DeviceScale: 0}}},
		{name: "negative", probe: &countingProbe{m: Measurement{PixelsPerInch: -96, DeviceScale: 1}}},
		{name: "nan", probe: &countingProbe{m: Measurement{PixelsPerInch: math.NaN(), DeviceScale: 1}}},
		{name: "panic", probe: ProbeFunc(func() (Measurement, error) { panic("boom") })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			d := New(WithProbe(tt.probe), WithLogger(logger))

			require.NotPanics(t, func() { d.Detect() })
			assert.Equal(t, domain.DefaultDPI, d.Detect())
			assert.Equal(t, 1, logger.warnCount(), "fallback is reported once, then cached")
		})
	}
}

func TestDetector_FallbackIsCached(t *testing.T) {
	probe := &countingProbe{err: errors.New("headless")}
	d := New(WithProbe(probe))

	assert.Equal(t, 96.0, d.Detect())
	assert.Equal(t, 96.0, d.Detect())
	assert.Equal(t, 1, probe.count())
}

func TestDetector_CustomFallback(t *testing.T) {
	d := New(WithFallback(72))
	assert.Equal(t, 72.0, d.Detect())

	d = New(WithFallback(-1))
	assert.Equal(t, domain.DefaultDPI, d.Detect())
}

func TestDetector_RunReportsSource(t *testing.T) {
	d := New(WithProbe(&countingProbe{m: Measurement{PixelsPerInch: 96, DeviceScale: 1.5}}))
	det := d.run()
	assert.Equal(t, SourceProbe, det.Source)
	assert.Equal(t, 144.0, det.DPI)
	assert.NoError(t, det.Err)

	d = New(WithProbe(&countingProbe{m: Measurement{}}))
	det = d.run()
	assert.Equal(t, SourceFallback, det.Source)
	assert.ErrorIs(t, det.Err, domain.ErrDetectionFailed)
}

func TestDetector_Last(t *testing.T) {
	probe := &countingProbe{m: Measurement{PixelsPerInch: 110, DeviceScale: 1}}
	d := New(WithProbe(probe))

	_, ok := d.Last()
	assert.False(t, ok, "nothing cached before Detect")
	assert.Equal(t, 0, probe.count(), "Last must not probe")

	d.Detect()
	det, ok := d.Last()
	require.True(t, ok)
	assert.Equal(t, Detection{DPI: 110, Source: SourceProbe}, det)

	d.Reset()
	_, ok = d.Last()
	assert.False(t, ok, "Reset clears the cached detection")

	d = New(WithProbe(&countingProbe{m: Measurement{}}))
	d.Detect()
	det, ok = d.Last()
	require.True(t, ok)
	assert.Equal(t, SourceFallback, det.Source)
	assert.Equal(t, domain.DefaultDPI, det.DPI)
	assert.ErrorIs(t, det.Err, domain.ErrDetectionFailed)
}

func TestDetector_Info(t *testing.T) {
	probe := &countingProbe{m: Measurement{PixelsPerInch: 120, DeviceScale: 1}}
	d := New(WithProbe(probe))

	info := d.Info()
	assert.Equal(t, Info{Current: 120, DefaultPrint: 300, PointsPerInch: 72}, info)
	assert.Equal(t, 1, probe.count())
}

func TestDetector_ConcurrentDetectProbesOnce(t *testing.T) {
	probe := &countingProbe{m: Measurement{PixelsPerInch: 96, DeviceScale: 1}}
	d := New(WithProbe(probe))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Detect()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, probe.count())
}
