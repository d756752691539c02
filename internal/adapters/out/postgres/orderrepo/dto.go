// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The identifier comes from a bigserial sequence, which gives
// the same monotonically increasing ids the in-memory store hands out.
type OrderDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64          `gorm:"index"`
	Lines       []OrderLineDTO `gorm:"serializer:json;type:jsonb"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line inside the serialized lines column.
type OrderLineDTO struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// fromDomain converts an order aggregate to its database representation.
// A zero ID is left for the database sequence to fill on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ProductID: line.ProductID().Int64(),
			Quantity:  line.Quantity(),
			Price:     line.Price().Decimal(),
		})
	}

	var id int64
	if aggregate.ID().Validate() == nil {
		id = aggregate.ID().Int64()
	}

	return OrderDTO{
		ID:          id,
		OwnerID:     aggregate.OwnerID().Int64(),
		Lines:       lines,
		TotalAmount: aggregate.TotalAmount().Decimal(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.NewID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.NewID(lineDTO.ProductID)
		if lineErr != nil {
			return nil, lineErr
		}

		price, lineErr := kernel.NewMoneyFromDecimal(lineDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewOrderLine(productID, lineDTO.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		lines,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
