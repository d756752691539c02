package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose only guarded transition is
// cancellation; administrative status overrides go through SetTo and accept
// any valid target state.
//
// Cancellation rule:
//
//	pending ────┐
//	processing ─┼──> cancelled
//	cancelled ──┘
//	shipped, delivered: cancellation rejected
//
// Note that cancelling an already cancelled order succeeds again. The guard
// only rejects orders that have physically left the warehouse, so a repeated
// cancel re-applies the cancelled state and refreshes the order's update
// time. Callers relying on strict idempotence must check the current status
// first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can no longer be cancelled.
	Shipped

	// Delivered indicates the order has reached the customer.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before shipment.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a wire name into a Status.
//
// Returns:
//   - the matching valid Status for "pending", "processing", "shipped",
//     "delivered", or "cancelled"
//   - an error for any other input, including "unknown"
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is a final state with no expected
// further transitions (Delivered or Cancelled).
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCancel checks if the status allows cancellation without
// performing the transition.
//
// Cancellation is rejected once the order has shipped:
//   - Shipped and Delivered orders cannot be cancelled
//   - Pending, Processing, and Cancelled orders can
//
// Returns:
//   - nil if cancellation is allowed from the current status
//   - error with details if cancellation is not allowed
func (s Status) ValidateCancel() error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s == Shipped || s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order with status %s cannot be cancelled", s.String()))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//   - Cancelled -> Cancelled (re-cancel succeeds, see type documentation)
//
// Invalid transitions:
//   - Shipped -> Cancelled (already left the warehouse)
//   - Delivered -> Cancelled (already with the customer)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if cancellation is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}

// SetTo transitions the status to any valid target status.
//
// This is the permissive administrative override backing the status update
// endpoint: every valid target is accepted from every state, including
// no-op transitions and backward moves such as Delivered -> Pending. Only
// the target's validity is checked. Cancellation through the public API
// should use Cancel, which enforces the shipment guard.
func (s Status) SetTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	return target, nil
}
