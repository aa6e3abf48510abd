// Package resolution detects the pixel density of the current display and
// caches it.
//
// A [Detector] owns exactly one cached value. The first call to
// [Detector.Detect] runs the configured [Probe]; every later call returns the
// cached value until [Detector.Reset] is called. Detection never fails from
// the caller's point of view: a probe that errors, panics or reports a
// non-positive density is replaced by the fallback resolution (96 DPI by
// default), and the failure is only visible through the Logger.
//
// # Usage
//
//	d := resolution.New(
//	    resolution.WithProbe(probe.Static{PixelsPerInch: 96, DeviceScale: 2}),
//	    resolution.WithLogger(logger),
//	)
//	dpi := d.Detect() // 192
package resolution
