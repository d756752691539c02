package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/catalog"
	"shop/internal/adapters/out/memory"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"
	"shop/internal/jobs"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters and use case handlers together.
// The storage backend is selected from Config.StorageBackend.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	uowFactory, err := createUnitOfWorkFactory(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		uowFactory: uowFactory,
		logger:     logger,
	}, nil
}

func createUnitOfWorkFactory(config Config) (ports.UnitOfWorkFactory, error) {
	switch config.StorageBackend {
	case "", "memory":
		store := memory.NewStore()
		if config.SeedData {
			if err := memory.Seed(context.Background(), store); err != nil {
				return nil, fmt.Errorf("failed to seed store: %w", err)
			}
		}
		return memory.NewUnitOfWorkFactory(store), nil

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		err = db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}, &productrepo.ProductDTO{})
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		return postgres.NewGormUnitOfWorkFactory(db), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", config.StorageBackend)
	}
}

// Read-side repositories come from a unit of work that never begins a
// transaction, so reads run on the base connection.

func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) userRepository() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

func (c *CompositionRoot) productRepository() ports.ProductRepository {
	return c.uowFactory.Create().ProductRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, catalog.NewPriceProvider(c.productRepository()), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.userRepository())
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.userRepository())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.productRepository())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.productRepository())
}

// CreateHTTPServer assembles the HTTP adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		CreateUser:        c.CreateCreateUserCommandHandler(),
		UpdateUser:        c.CreateUpdateUserCommandHandler(),
		DeleteUser:        c.CreateDeleteUserCommandHandler(),
		CreateProduct:     c.CreateCreateProductCommandHandler(),
		UpdateProduct:     c.CreateUpdateProductCommandHandler(),
		DeleteProduct:     c.CreateDeleteProductCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetUser:           c.CreateGetUserQueryHandler(),
		GetAllUsers:       c.CreateGetAllUsersQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
		GetProducts:       c.CreateGetProductsQueryHandler(),
	})
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderRepository(), c.productRepository(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
