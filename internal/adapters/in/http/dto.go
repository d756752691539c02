package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for POST /orders.
type CreateOrderRequest struct {
	UserID int64                    `json:"userId"`
	Items  []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested line in an order creation body.
type CreateOrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateOrderStatusRequest is the JSON body for PUT /orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one order line in order JSON payloads.
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResponse is the order JSON payload.
type OrderResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"userId"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func orderResponseFromQuery(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		items = append(items, OrderItemResponse{
			ProductID: line.ProductID.Int64(),
			Quantity:  line.Quantity,
			Price:     line.Price.Float64(),
		})
	}

	return OrderResponse{
		ID:          resp.ID.Int64(),
		UserID:      resp.OwnerID.Int64(),
		Items:       items,
		TotalAmount: resp.TotalAmount.Float64(),
		Status:      resp.Status.String(),
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

// CreateUserRequest is the JSON body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUserRequest is the JSON body for PUT /users/{id}.
// Absent fields keep their stored values.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// UserResponse is the user JSON payload.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func userResponseFromQuery(resp queries.UserResponse) UserResponse {
	return UserResponse{
		ID:        resp.ID.Int64(),
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      resp.Role,
		CreatedAt: resp.CreatedAt,
	}
}

// CreateProductRequest is the JSON body for POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// UpdateProductRequest is the JSON body for PUT /products/{id}.
// Absent fields keep their stored values.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// ProductResponse is the product JSON payload.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

func productResponseFromQuery(resp queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          resp.ID.Int64(),
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price.Float64(),
		Category:    resp.Category,
		InStock:     resp.InStock,
		CreatedAt:   resp.CreatedAt,
	}
}

// HealthResponse is the payload for GET /orders/health/check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
