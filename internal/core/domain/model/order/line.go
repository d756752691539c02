package order

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// OrderLine represents one product entry within an order.
// It is an immutable value object capturing the product, the requested
// quantity, and the unit price snapshot taken at order-creation time.
// Later price changes in the product catalog never affect existing lines.
type OrderLine struct {
	productID kernel.ID
	quantity  int
	price     kernel.Money
}

// NewOrderLine creates a validated order line.
//
// Parameters:
//   - productID: Reference to the ordered product (must be a valid ID)
//   - quantity: Number of units ordered (must be at least 1)
//   - price: Unit price snapshot (non-negative by construction of Money)
//
// Returns:
//   - OrderLine: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrderLine(productID kernel.ID, quantity int, price kernel.Money) (OrderLine, error) {
	if err := productID.Validate(); err != nil {
		return OrderLine{}, err
	}

	if quantity < 1 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderLine{
		productID: productID,
		quantity:  quantity,
		price:     price,
	}, nil
}

// ProductID returns the identifier of the ordered product.
func (l OrderLine) ProductID() kernel.ID {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Price returns the unit price captured at order-creation time.
func (l OrderLine) Price() kernel.Money {
	return l.price
}

// Total returns the line total: unit price multiplied by quantity.
func (l OrderLine) Total() kernel.Money {
	return l.price.MulInt(l.quantity)
}
