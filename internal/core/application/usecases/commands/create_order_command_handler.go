package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// priceLookupTimeout bounds each unit-price resolution during order
// creation so a slow catalog cannot stall the request indefinitely.
const priceLookupTimeout = 2 * time.Second

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves unit prices from the catalog, computes the order total, and
// persists the new order in pending status with a store-assigned id.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, prices, logger)
//	cmd, _ := NewCreateOrderCommand(ownerID, lines)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s created in %s status", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	prices     ports.PriceProvider
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a
// PriceProvider for resolving unit prices.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	prices ports.PriceProvider,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		prices:     prices,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// For each requested line the current unit price is resolved from the
// catalog under a bounded timeout. An unknown product does not fail the
// request: its price defaults to zero, matching the long-standing behavior
// callers depend on, and a warning is logged so the case is visible. Any
// other lookup failure aborts the creation. All validation happens before
// the order is persisted; no partial state is ever stored.
//
// Returns the persisted order including its store-assigned identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(cmd.Lines()))
	for _, req := range cmd.Lines() {
		price, err := h.resolvePrice(ctx, req)
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(req.ProductID(), req.Quantity(), price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OwnerID(), lines, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) resolvePrice(
	ctx context.Context,
	req OrderLineRequest,
) (kernel.Money, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, priceLookupTimeout)
	defer cancel()

	price, err := h.prices.UnitPrice(lookupCtx, req.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Unknown product in order creation, defaulting price to zero",
				"productId", req.ProductID().String())
			return kernel.ZeroMoney(), nil
		}
		return kernel.Money{}, err
	}

	return price, nil
}
