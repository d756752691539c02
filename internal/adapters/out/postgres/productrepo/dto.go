// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(14,2)"`
	Category    string          `gorm:"index"`
	InStock     bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
// A zero ID is left for the database sequence to fill on insert.
func fromDomain(entity *product.Product) ProductDTO {
	var id int64
	if entity.ID().Validate() == nil {
		id = entity.ID().Int64()
	}

	return ProductDTO{
		ID:          id,
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price().Decimal(),
		Category:    entity.Category(),
		InStock:     entity.InStock(),
		CreatedAt:   entity.CreatedAt(),
	}
}

// toDomain converts a database row to a product entity using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.InStock,
		dto.CreatedAt,
	)
}
