package resolution

// Measurement is what a Probe reports about the display.
type Measurement struct {
	// PixelsPerInch is the number of linear logical pixels spanning one
	// physical inch.
	PixelsPerInch float64

	// DeviceScale is the device pixel ratio applied on top of PixelsPerInch.
	DeviceScale float64
}

// DPI returns PixelsPerInch scaled by DeviceScale.
func (m Measurement) DPI() float64 {
	return m.PixelsPerInch * m.DeviceScale
}

// Probe measures the physical pixel density of an output surface.
// Implementations run synchronously.
type Probe interface {
	Measure() (Measurement, error)
}

// ProbeFunc adapts a plain function to the Probe interface.
type ProbeFunc func() (Measurement, error)

// Measure calls f.
func (f ProbeFunc) Measure() (Measurement, error) {
	return f()
}
