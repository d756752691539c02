package memory

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
)

// Seed loads the demo fixtures into an empty store: three users, three
// catalog products, and two historical orders. Intended for local runs and
// demos; production deployments start from an empty store.
func Seed(ctx context.Context, store *Store) error {
	if err := seedUsers(ctx, store); err != nil {
		return err
	}
	if err := seedProducts(ctx, store); err != nil {
		return err
	}
	return seedOrders(ctx, store)
}

func seedUsers(ctx context.Context, store *Store) error {
	repo := NewUserRepository(store)
	now := time.Now().UTC()

	fixtures := []struct {
		name  string
		email string
		role  string
	}{
		{"John Doe", "john@example.com", "admin"},
		{"Jane Smith", "jane@example.com", "user"},
		{"Bob Johnson", "bob@example.com", "user"},
	}

	for _, f := range fixtures {
		u, err := user.NewUser(f.name, f.email, f.role, now)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, u); err != nil {
			return err
		}
	}

	return nil
}

func seedProducts(ctx context.Context, store *Store) error {
	repo := NewProductRepository(store)
	now := time.Now().UTC()

	fixtures := []struct {
		name        string
		description string
		price       float64
		category    string
		inStock     bool
	}{
		{"Smartphone X", "Latest smartphone with advanced features", 999.99, "electronics", true},
		{"Laptop Pro", "High-performance laptop for professionals", 1499.99, "electronics", true},
		{"Wireless Headphones", "Noise-cancelling wireless headphones", 199.99, "accessories", false},
	}

	for _, f := range fixtures {
		price, err := kernel.NewMoneyFromFloat(f.price)
		if err != nil {
			return err
		}

		p, err := product.NewProduct(f.name, f.description, price, f.category, f.inStock, now)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

func seedOrders(ctx context.Context, store *Store) error {
	repo := NewOrderRepository(store)

	first, err := seedOrder(
		kernel.MustNewID(1),
		[]seedLine{{productID: 1, quantity: 2, price: 999.99}, {productID: 3, quantity: 1, price: 199.99}},
		order.Delivered,
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return err
	}
	if err = repo.Add(ctx, first); err != nil {
		return err
	}

	second, err := seedOrder(
		kernel.MustNewID(2),
		[]seedLine{{productID: 2, quantity: 1, price: 1499.99}},
		order.Processing,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return err
	}
	return repo.Add(ctx, second)
}

type seedLine struct {
	productID int64
	quantity  int
	price     float64
}

func seedOrder(
	ownerID kernel.ID,
	seedLines []seedLine,
	status order.Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*order.Order, error) {
	lines := make([]order.OrderLine, 0, len(seedLines))
	for _, sl := range seedLines {
		price, err := kernel.NewMoneyFromFloat(sl.price)
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(kernel.MustNewID(sl.productID), sl.quantity, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	created, err := order.NewOrder(ownerID, lines, createdAt)
	if err != nil {
		return nil, err
	}

	if err = created.ChangeStatus(status, updatedAt); err != nil {
		return nil, err
	}

	return created, nil
}
