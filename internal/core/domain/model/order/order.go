package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries an identifier. Identifiers are immutable once set.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a purchase request in the system. It is the aggregate root
// that manages the order lifecycle from creation through status changes to
// cancellation.
//
// Order follows these invariants:
//   - The identifier is assigned once by the store and immutable thereafter
//   - The owner reference must be a valid ID
//   - The total amount equals the sum of line totals at creation time and is
//     never recomputed: lines are a price snapshot, and no operation besides
//     construction may alter lines or total
//   - The update time never precedes the creation time
//   - Can only be created through NewOrder or RestoreOrder
//
// An order with no lines is accepted and carries a zero total. The original
// API behaved this way and callers depend on it; rejecting empty orders is a
// product decision that has not been taken.
type Order struct {
	// id is the store-assigned identifier, zero until AssignID is called
	id kernel.ID

	// ownerID references the user the order belongs to. The reference is not
	// checked against the user registry here; that is the registry's concern.
	ownerID kernel.ID

	// lines is the ordered sequence of product entries with price snapshots
	lines []OrderLine

	// totalAmount is computed once at creation from the lines
	totalAmount kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every status change
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with its total computed
// from the given lines. The identifier is left unassigned; the store sets it
// on insert via AssignID.
//
// Parameters:
//   - ownerID: The owning user's identifier (must be valid)
//   - lines: Product entries with captured unit prices (may be empty)
//   - now: Creation timestamp, used for both createdAt and updatedAt
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if the owner reference is invalid
func NewOrder(ownerID kernel.ID, lines []OrderLine, now time.Time) (*Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	total := ZeroTotal()
	for _, line := range lines {
		total = total.Add(line.Total())
	}

	return &Order{
		ownerID:       ownerID,
		lines:         append([]OrderLine(nil), lines...),
		totalAmount:   total,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts an explicit identifier, status, total, and
// timestamps. Storage adapters use it to map stored records back to the
// domain; the stored total is trusted as the creation-time snapshot and is
// not recomputed.
//
// Returns an error if any identifier or the status is invalid, or if
// updatedAt precedes createdAt.
func RestoreOrder(
	id kernel.ID,
	ownerID kernel.ID,
	lines []OrderLine,
	totalAmount kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("%s precedes createdAt %s", updatedAt, createdAt))
	}

	return &Order{
		id:            id,
		ownerID:       ownerID,
		lines:         append([]OrderLine(nil), lines...),
		totalAmount:   totalAmount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// ZeroTotal returns the total amount of an order with no lines.
func ZeroTotal() kernel.Money {
	return kernel.ZeroMoney()
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Storage adapters call it before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AssignID sets the store-assigned identifier on a freshly created order.
// It fails with ErrOrderIDAlreadyAssigned if the order already has one:
// identifiers are immutable for the lifetime of the order.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if o.id.Validate() == nil {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// ID returns the order's identifier. The zero ID is returned until the
// store has assigned one.
func (o *Order) ID() kernel.ID {
	return o.id
}

// OwnerID returns the identifier of the user the order belongs to.
func (o *Order) OwnerID() kernel.ID {
	return o.ownerID
}

// Lines returns a copy of the order's lines in their original sequence.
func (o *Order) Lines() []OrderLine {
	return append([]OrderLine(nil), o.lines...)
}

// TotalAmount returns the total computed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the order to any valid status and refreshes the update
// time.
//
// This is the permissive administrative override: no transition rules are
// enforced beyond validity of the target, so backward moves and no-op moves
// succeed. Public cancellation must go through Cancel, which enforces the
// shipment guard. The asymmetry is intentional.
//
// On failure the order is left unchanged.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.SetTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel transitions the order to Cancelled and refreshes the update time.
//
// Cancellation succeeds from Pending, Processing, and (see Status) from
// Cancelled itself. It fails once the order has shipped or been delivered.
// On failure the order is left unchanged.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}
