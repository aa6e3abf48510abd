// Package domain contains the core value types for sizeconv.
//
// This package is the innermost layer of the module. It has no dependencies on
// infrastructure concerns (logging, file system, display probing) and contains
// only the unit model, the fixed conversion constants and the validation rules
// every conversion applies before doing any arithmetic.
//
// # Entities
//
//   - [Unit]: one of millimeter, point or pixel
//   - [Measurement]: a magnitude tagged with a [Unit]
//   - [ValidationError]: the only error a conversion surfaces to its caller
//
// # Design Principles
//
// Domain values are:
//   - Immutable and transient
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
