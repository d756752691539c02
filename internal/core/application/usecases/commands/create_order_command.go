package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
)

// OrderLineRequest is one requested product/quantity pair in a creation
// request. Prices are not part of the request: the handler resolves them
// from the catalog at creation time.
type OrderLineRequest struct {
	productID kernel.ID
	quantity  int
}

// NewOrderLineRequest creates a validated line request.
// The product reference must be valid and the quantity at least 1.
func NewOrderLineRequest(productID kernel.ID, quantity int) (OrderLineRequest, error) {
	if err := productID.Validate(); err != nil {
		return OrderLineRequest{}, err
	}
	if quantity < 1 {
		return OrderLineRequest{}, fmt.Errorf("%w: got %d", ErrLineQuantityIsInvalid, quantity)
	}

	return OrderLineRequest{productID: productID, quantity: quantity}, nil
}

// ProductID returns the requested product's identifier.
func (r OrderLineRequest) ProductID() kernel.ID {
	return r.productID
}

// Quantity returns the requested number of units.
func (r OrderLineRequest) Quantity() int {
	return r.quantity
}

// CreateOrderCommand represents a request to create a new order for a user.
// Encapsulates the owner reference and the requested lines. An empty line
// list is accepted; the resulting order has a zero total.
//
// Example:
//
//	line, _ := NewOrderLineRequest(kernel.MustNewID(2), 1)
//	cmd, err := NewCreateOrderCommand(ownerID, []OrderLineRequest{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.ID
	lines   []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the owner reference; line requests are validated by their own
// constructor.
func NewCreateOrderCommand(ownerID kernel.ID, lines []OrderLineRequest) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOwnerID(ownerID); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.lines = append([]OrderLineRequest(nil), lines...)
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the identifier of the user the order is created for.
func (c CreateOrderCommand) OwnerID() kernel.ID {
	return c.ownerID
}

// Lines returns the requested product/quantity pairs.
func (c CreateOrderCommand) Lines() []OrderLineRequest {
	return append([]OrderLineRequest(nil), c.lines...)
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
