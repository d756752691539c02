// Package kernel provides core domain primitives shared across the shop
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - ID: A value object for positive-integer entity identifiers with validation
//   - Money: A decimal-backed value object for non-negative monetary amounts
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
