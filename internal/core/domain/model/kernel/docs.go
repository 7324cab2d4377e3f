// Package kernel provides core domain primitives used throughout the
// marketplace delivery model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Weight: A value object for shipment weights and vehicle capacities in kilograms
//   - Role: A tagged variant describing which kind of party is calling a query
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
