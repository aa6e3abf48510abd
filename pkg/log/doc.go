// Package log provides a logging abstraction for sizeconv components.
//
// Library packages only log diagnostics that never change a result, such as
// a display probe failing and the resolution detector falling back to its
// default. They default to a no-op logger so embedding sizeconv is silent
// unless a Logger is supplied.
//
// # Usage
//
// Use the provided zerolog adapter:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
package log
