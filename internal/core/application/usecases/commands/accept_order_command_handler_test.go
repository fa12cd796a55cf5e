package commands_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAcceptOrderCommand("o1")

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	mock.InOrder(
		reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusPending), nil).Once(),
		mutator.On("AcceptOrder", ctx, "o1").Return(nil).Once(),
		invalidator.On("InvalidateOrder", ctx, "o1").Once(),
	)

	h := commands.NewAcceptOrderCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	reader.AssertExpectations(t)
	mutator.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAcceptOrderCommand("o1")

	accepted := deliveryOrder("o1", order.StatusPending)
	accepted.IsAccepted = true

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	reader.On("GetOrder", ctx, "o1").Return(accepted, nil).Twice()

	h := commands.NewAcceptOrderCommandHandler(reader, mutator, invalidator)

	// Idempotent: both calls succeed, neither issues a store mutation.
	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd))

	mutator.AssertNotCalled(t, "AcceptOrder", mock.Anything, mock.Anything)
	invalidator.AssertNotCalled(t, "InvalidateOrder", mock.Anything, mock.Anything)
	reader.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAcceptOrderCommand("missing")

	reader := new(MockOrderReader)
	reader.On("GetOrder", ctx, "missing").
		Return(nil, errs.NewObjectNotFoundError("orderId", "missing")).Once()

	h := commands.NewAcceptOrderCommandHandler(
		reader, new(MockOrderMutator), new(MockCacheInvalidator))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_StoreRejection(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAcceptOrderCommand("o1")

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	mock.InOrder(
		reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusPending), nil).Once(),
		mutator.On("AcceptOrder", ctx, "o1").
			Return(errs.NewTransitionFailedError("accept-order", "o1")).Once(),
	)

	h := commands.NewAcceptOrderCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionFailed)
	invalidator.AssertNotCalled(t, "InvalidateOrder", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_MissingCredential(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAcceptOrderCommand("o1")

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	mock.InOrder(
		reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusPending), nil).Once(),
		mutator.On("AcceptOrder", ctx, "o1").
			Return(errs.NewUnauthorizedError("accept-order")).Once(),
	)

	h := commands.NewAcceptOrderCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	invalidator.AssertNotCalled(t, "InvalidateOrder", mock.Anything, mock.Anything)
}
