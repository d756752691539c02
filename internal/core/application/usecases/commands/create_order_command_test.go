package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderLineRequest(t *testing.T) {
	t.Run("should create valid line request", func(t *testing.T) {
		req, err := commands.NewOrderLineRequest(kernel.MustNewID(2), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(2), req.ProductID().Int64())
		assert.Equal(t, 3, req.Quantity())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := commands.NewOrderLineRequest(kernel.MustNewID(2), 0)

		require.ErrorIs(t, err, commands.ErrLineQuantityIsInvalid)
	})

	t.Run("should reject invalid product id", func(t *testing.T) {
		var invalid kernel.ID
		_, err := commands.NewOrderLineRequest(invalid, 1)

		require.Error(t, err)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		line, err := commands.NewOrderLineRequest(kernel.MustNewID(1), 2)
		require.NoError(t, err)

		cmd, err := commands.NewCreateOrderCommand(kernel.MustNewID(7), []commands.OrderLineRequest{line})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(7), cmd.OwnerID().Int64())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("should accept empty lines", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.MustNewID(7), nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Lines())
	})

	t.Run("should reject invalid owner id", func(t *testing.T) {
		var invalid kernel.ID
		_, err := commands.NewCreateOrderCommand(invalid, nil)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
