// Package product provides the Product entity of the shop's catalog.
// The catalog is the source of the unit prices captured on order lines.
package product

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through a factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents an item in the catalog.
// The identifier is assigned by the store on insert and immutable afterwards.
type Product struct {
	id            kernel.ID
	name          string
	description   string
	price         kernel.Money
	category      string
	inStock       bool
	createdAt     time.Time
	isConstructed bool
}

// NewProduct creates a new Product with validated fields. The identifier is
// left unassigned; the store sets it on insert via AssignID.
func NewProduct(
	name, description string,
	price kernel.Money,
	category string,
	inStock bool,
	now time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		price:         price,
		category:      category,
		inStock:       inStock,
		createdAt:     now,
		isConstructed: true,
	}

	if err := p.setName(name); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(
	id kernel.ID,
	name, description string,
	price kernel.Money,
	category string,
	inStock bool,
	createdAt time.Time,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, err := NewProduct(name, description, price, category, inStock, createdAt)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID sets the store-assigned identifier. It fails if the product
// already carries one.
func (p *Product) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if p.id.Validate() == nil {
		return errors.New("product id is already assigned")
	}
	p.id = id
	return nil
}

// ID returns the product's identifier.
func (p *Product) ID() kernel.ID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
// Orders capture this price at creation time; changing it later never
// affects existing orders.
func (p *Product) Price() kernel.Money { return p.price }

// Category returns the product category.
func (p *Product) Category() string { return p.category }

// InStock reports whether the product is currently in stock.
func (p *Product) InStock() bool { return p.inStock }

// CreatedAt returns the catalog registration timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// Patch applies a partial update with an explicit field-by-field merge.
// Nil pointers leave the corresponding field untouched. Identifier and
// creation time cannot be changed.
func (p *Product) Patch(name, description *string, price *kernel.Money, category *string, inStock *bool) error {
	if name != nil {
		if err := p.setName(*name); err != nil {
			return err
		}
	}
	if description != nil {
		p.description = *description
	}
	if price != nil {
		p.price = *price
	}
	if category != nil {
		p.category = *category
	}
	if inStock != nil {
		p.inStock = *inStock
	}
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
