// Package convert converts lengths between millimeters, points and pixels.
//
// Pixel conversions need a resolution. Callers pass one with
// [WithResolution]; otherwise the [Converter] asks its ResolutionProvider,
// typically a *resolution.Detector, for the detected display resolution.
// An explicit resolution is always validated and never replaced by
// detection, so WithResolution(0) is an error rather than "auto".
//
// Conversions that produce pixels are rounded up to the next whole pixel
// unless [Direct] is given. Conversions that consume pixels are never rounded.
package convert
