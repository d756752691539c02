// Package order provides domain entities and business logic for order
// lifecycle management in the shop system. It implements the Order aggregate
// root with total computation and status transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, lines, total, and lifecycle
//   - OrderLine: A value object holding a product/quantity/price snapshot
//   - Status: A state machine guarding order cancellation
//
// Key business rules:
//   - An order's total equals the sum of line price times quantity at
//     creation and is never recomputed afterwards
//   - Orders start in pending status; identifiers are assigned by the store
//   - Cancellation is rejected once an order has shipped or been delivered
//   - The status update override accepts any valid target status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
