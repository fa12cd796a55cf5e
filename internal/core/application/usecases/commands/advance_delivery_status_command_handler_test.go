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

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderMutator struct{ mock.Mock }

func (m *MockOrderMutator) UpdateDeliveryStatus(ctx context.Context, orderID string, status order.DeliveryStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderMutator) AcceptOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderMutator) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockCacheInvalidator struct{ mock.Mock }

func (m *MockCacheInvalidator) InvalidateOrder(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func deliveryOrder(id string, status order.DeliveryStatus) *order.Order {
	return &order.Order{
		ID:             id,
		Customer:       order.Customer{ID: "u1", Name: "Jane", Email: "jane@example.com"},
		DeliveryType:   order.TypeDelivery,
		DeliveryStatus: status,
	}
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAdvanceDeliveryStatusCommand("o1", order.StatusInTransit)

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	mock.InOrder(
		reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusProcessing), nil).Once(),
		mutator.On("UpdateDeliveryStatus", ctx, "o1", order.StatusInTransit).Return(nil).Once(),
		invalidator.On("InvalidateOrder", ctx, "o1").Once(),
	)

	h := commands.NewAdvanceDeliveryStatusCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	reader.AssertExpectations(t)
	mutator.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AdvanceDeliveryStatusCommand{} // not constructed properly

	h := commands.NewAdvanceDeliveryStatusCommandHandler(
		new(MockOrderReader), new(MockOrderMutator), new(MockCacheInvalidator))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAdvanceDeliveryStatusCommand("o1", order.StatusProcessing)

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusDelivered), nil).Once()

	h := commands.NewAdvanceDeliveryStatusCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	// The invalid transition never reached the store and nothing was invalidated.
	mutator.AssertNotCalled(t, "UpdateDeliveryStatus", mock.Anything, mock.Anything, mock.Anything)
	invalidator.AssertNotCalled(t, "InvalidateOrder", mock.Anything, mock.Anything)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_NonDeliveryOrder(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAdvanceDeliveryStatusCommand("o1", order.StatusProcessing)

	pickup := deliveryOrder("o1", order.StatusPending)
	pickup.DeliveryType = order.TypePickup

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	reader.On("GetOrder", ctx, "o1").Return(pickup, nil).Once()

	h := commands.NewAdvanceDeliveryStatusCommandHandler(reader, mutator, new(MockCacheInvalidator))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	mutator.AssertNotCalled(t, "UpdateDeliveryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAdvanceDeliveryStatusCommand("missing", order.StatusProcessing)

	reader := new(MockOrderReader)
	reader.On("GetOrder", ctx, "missing").
		Return(nil, errs.NewObjectNotFoundError("orderId", "missing")).Once()

	h := commands.NewAdvanceDeliveryStatusCommandHandler(
		reader, new(MockOrderMutator), new(MockCacheInvalidator))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_StoreRejection(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAdvanceDeliveryStatusCommand("o1", order.StatusDelivered)

	reader := new(MockOrderReader)
	mutator := new(MockOrderMutator)
	invalidator := new(MockCacheInvalidator)
	mock.InOrder(
		reader.On("GetOrder", ctx, "o1").Return(deliveryOrder("o1", order.StatusInTransit), nil).Once(),
		mutator.On("UpdateDeliveryStatus", ctx, "o1", order.StatusDelivered).
			Return(errs.NewTransitionFailedError("update-delivery-status", "o1")).Once(),
	)

	h := commands.NewAdvanceDeliveryStatusCommandHandler(reader, mutator, invalidator)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionFailed)
	// A failed mutation must not touch the cache: the displayed value stays
	// at the last confirmed state.
	invalidator.AssertNotCalled(t, "InvalidateOrder", mock.Anything, mock.Anything)
}
