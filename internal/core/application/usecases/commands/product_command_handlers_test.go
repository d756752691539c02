package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return money
}

func restoredProduct(t *testing.T, id int64) *product.Product {
	t.Helper()

	restored, err := product.RestoreProduct(
		kernel.MustNewID(id),
		"Laptop",
		"High-performance laptop",
		mustMoney(t, 999.99),
		"electronics",
		true,
		time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return restored
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		"Desk Chair", "Ergonomic office chair", mustMoney(t, 199.99), "furniture", true)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*product.Product)
				require.NoError(t, p.AssignID(kernel.MustNewID(4)))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID().Int64())
	assert.Equal(t, "Desk Chair", created.Name())
	assert.Equal(t, "199.99", created.Price().String())
	assert.Equal(t, "furniture", created.Category())
	assert.True(t, created.InStock())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateProductCommand_RequiresName(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", mustMoney(t, 10), "misc", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateProductCommandHandler_Handle_PartialUpdate(t *testing.T) {
	ctx := t.Context()
	existing := restoredProduct(t, 1)
	newPrice := mustMoney(t, 899.99)
	outOfStock := false
	cmd, err := commands.NewUpdateProductCommand(
		kernel.MustNewID(1), nil, nil, &newPrice, nil, &outOfStock)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.MustNewID(1)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "899.99", updated.Price().String())
	assert.False(t, updated.InStock())
	assert.Equal(t, "Laptop", updated.Name())
	assert.Equal(t, "electronics", updated.Category())
}

func TestUpdateProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateProductCommand(
		kernel.MustNewID(42), strPtr("Ghost"), nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.MustNewID(42)).
			Return(nil, errs.NewObjectNotFoundError("productID", "42")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteProductCommand(kernel.MustNewID(3))
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Remove", ctx, kernel.MustNewID(3)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteProductCommand(kernel.MustNewID(42))
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Remove", ctx, kernel.MustNewID(42)).
			Return(errs.NewObjectNotFoundError("productID", "42")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
