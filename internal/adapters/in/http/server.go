// Package http provides the echo-based HTTP adapter.
// It maps REST routes onto the application's command and query handlers and
// translates the error taxonomy into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createUserHandler        commands.CreateUserCommandHandler
	updateUserHandler        commands.UpdateUserCommandHandler
	deleteUserHandler        commands.DeleteUserCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
	getUserHandler     queries.GetUserQueryHandler
	getAllUsersHandler queries.GetAllUsersQueryHandler
	getProductHandler  queries.GetProductQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
}

// Handlers bundles every use case handler the server exposes.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	CreateUser        commands.CreateUserCommandHandler
	UpdateUser        commands.UpdateUserCommandHandler
	DeleteUser        commands.DeleteUserCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler

	GetOrder    queries.GetOrderQueryHandler
	GetOrders   queries.GetOrdersQueryHandler
	GetUser     queries.GetUserQueryHandler
	GetAllUsers queries.GetAllUsersQueryHandler
	GetProduct  queries.GetProductQueryHandler
	GetProducts queries.GetProductsQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:       handlers.CreateOrder,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		cancelOrderHandler:       handlers.CancelOrder,
		createUserHandler:        handlers.CreateUser,
		updateUserHandler:        handlers.UpdateUser,
		deleteUserHandler:        handlers.DeleteUser,
		createProductHandler:     handlers.CreateProduct,
		updateProductHandler:     handlers.UpdateProduct,
		deleteProductHandler:     handlers.DeleteProduct,
		getOrderHandler:          handlers.GetOrder,
		getOrdersHandler:         handlers.GetOrders,
		getUserHandler:           handlers.GetUser,
		getAllUsersHandler:       handlers.GetAllUsers,
		getProductHandler:        handlers.GetProduct,
		getProductsHandler:       handlers.GetProducts,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders/health/check", s.HealthCheck)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.PUT("/orders/:id/cancel", s.CancelOrder)

	e.GET("/users", s.GetUsers)
	e.POST("/users", s.CreateUser)
	e.GET("/users/:id", s.GetUser)
	e.PUT("/users/:id", s.UpdateUser)
	e.DELETE("/users/:id", s.DeleteUser)

	e.GET("/products", s.GetProducts)
	e.POST("/products", s.CreateProduct)
	e.GET("/products/:id", s.GetProduct)
	e.PUT("/products/:id", s.UpdateProduct)
	e.DELETE("/products/:id", s.DeleteProduct)
}

// HealthCheck handles GET /orders/health/check.
func (s *Server) HealthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   "orders-api",
		Timestamp: time.Now().UTC(),
	})
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.NewID(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	lines := make([]commands.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.NewID(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order data: "+itemErr.Error())
		}

		line, itemErr := commands.NewOrderLineRequest(productID, item.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order data: "+itemErr.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(ownerID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromQuery(queries.NewOrderResponse(created)))
}

// GetOrders handles GET /orders - lists orders, optionally by owner.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if raw := ctx.QueryParam("ownerId"); raw != "" {
		ownerID, err := parseID(raw)
		if err != nil {
			return badRequest(ctx, "Invalid ownerId: "+raw)
		}

		query, err = queries.NewGetOrdersQueryForOwner(ownerID)
		if err != nil {
			return badRequest(ctx, "Invalid ownerId: "+raw)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderResponseFromQuery(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// UpdateOrderStatus handles PUT /orders/:id/status - sets any valid status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(queries.NewOrderResponse(updated)))
}

// CancelOrder handles PUT /orders/:id/cancel - guarded cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(queries.NewOrderResponse(cancelled)))
}

// GetUsers handles GET /users - lists all users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UserResponse, 0, len(users))
	for _, resp := range users {
		response = append(response, userResponseFromQuery(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /users - registers a new user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	created, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userResponseFromQuery(queries.NewUserResponse(created)))
}

// GetUser handles GET /users/:id - retrieves one user.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	resp, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponseFromQuery(resp))
}

// UpdateUser handles PUT /users/:id - partial update.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	var req UpdateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.Name, req.Email, req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	updated, err := s.updateUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponseFromQuery(queries.NewUserResponse(updated)))
}

// DeleteUser handles DELETE /users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	if err = s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /products - lists products, optionally by category.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	if category := ctx.QueryParam("category"); category != "" {
		var err error
		query, err = queries.NewGetProductsQueryForCategory(category)
		if err != nil {
			return badRequest(ctx, "Invalid category: "+category)
		}
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, resp := range products {
		response = append(response, productResponseFromQuery(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Description, price, req.Category, req.InStock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponseFromQuery(queries.NewProductResponse(created)))
}

// GetProduct handles GET /products/:id - retrieves one product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	resp, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponseFromQuery(resp))
}

// UpdateProduct handles PUT /products/:id - partial update.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var price *kernel.Money
	if req.Price != nil {
		parsed, priceErr := kernel.NewMoneyFromFloat(*req.Price)
		if priceErr != nil {
			return badRequest(ctx, "Invalid product data: "+priceErr.Error())
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Description, price, req.Category, req.InStock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponseFromQuery(queries.NewProductResponse(updated)))
}

// DeleteProduct handles DELETE /products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseID(raw string) (kernel.ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.ID{}, err
	}
	return kernel.NewID(value)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps handler errors onto status codes: missing objects are
// 404, rejected values and transitions are 400, everything else is 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
