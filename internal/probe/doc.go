// Package probe provides resolution.Probe implementations that measure the
// pixel density of the local display without a windowing toolkit.
package probe
