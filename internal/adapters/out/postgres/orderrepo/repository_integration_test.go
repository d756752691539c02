package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including database-assigned sequential identifiers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Reset data and the id sequence before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIDs() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)

	for i := int64(1); i <= 3; i++ {
		testOrder := suite.createTestOrder(1, 999.99, 1)
		suite.Require().NoError(suite.repository.Add(ctx, testOrder))
		suite.Equal(i, testOrder.ID().Int64())
	}

	suite.assertOrderCount(3)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder(2, 1499.99, 1)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(int64(2), retrieved.OwnerID().Int64())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("1499.99", retrieved.TotalAmount().String())
	suite.Require().Len(retrieved.Lines(), 1)
	suite.Equal("1499.99", retrieved.Lines()[0].Price().String())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.MustNewID(42))

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1, 199.99, 2)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	detached, err := order.RestoreOrder(
		kernel.MustNewID(42),
		kernel.MustNewID(1),
		nil,
		order.ZeroTotal(),
		order.Pending,
		time.Now().UTC(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, detached)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_PreservesInsertionOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)

	for range 3 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(1, 999.99, 1)))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	for i, retrieved := range all {
		suite.Equal(int64(i+1), retrieved.ID().Int64())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOwner_FiltersAndPreservesOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(1, 999.99, 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(2, 199.99, 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(1, 1499.99, 2)))

	owned, err := suite.repository.GetByOwner(ctx, kernel.MustNewID(1))
	suite.Require().NoError(err)
	suite.Require().Len(owned, 2)
	suite.Equal(int64(1), owned[0].ID().Int64())
	suite.Equal(int64(3), owned[1].ID().Int64())

	none, err := suite.repository.GetByOwner(ctx, kernel.MustNewID(9))
	suite.Require().NoError(err)
	suite.Empty(none)
}

// createTestOrder creates a pending order with a single line.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	ownerID int64, price float64, quantity int,
) *order.Order {
	money, err := kernel.NewMoneyFromFloat(price)
	suite.Require().NoError(err)

	line, err := order.NewOrderLine(kernel.MustNewID(1), quantity, money)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.MustNewID(ownerID), []order.OrderLine{line}, time.Now().UTC())
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
