package querycache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"orderdesk/internal/core/application/querycache"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) GetOrders(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(ports.OrderPage), args.Error(1)
}

func (m *MockOrderStore) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateDeliveryStatus(ctx context.Context, orderID string, status order.DeliveryStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderStore) AcceptOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderStore) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrder(id string, status order.DeliveryStatus) order.Order {
	return order.Order{
		ID:             id,
		Customer:       order.Customer{ID: "u1", Name: "Jane", Email: "jane@example.com"},
		DeliveryType:   order.TypeDelivery,
		DeliveryStatus: status,
	}
}

func pageOf(orders ...order.Order) ports.OrderPage {
	total := 0.0
	for _, o := range orders {
		total += o.Amount
	}
	return ports.OrderPage{Orders: orders, TotalOrders: len(orders), TotalAmount: total}
}

func TestCache_Orders(t *testing.T) {
	t.Run("first_read_fetches_then_serves_from_cache", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		first, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		require.Len(t, first.Orders, 1)

		second, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		assert.Equal(t, first.Orders, second.Orders)

		store.AssertExpectations(t)
	})

	t.Run("distinct_keys_have_independent_entries", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once()
		store.On("GetOrders", mock.Anything, ports.OrderFilter{CustomerEmail: "jane@example.com"}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		_, err = cache.Orders(ctx, querycache.CustomerOrders("Jane@Example.com"))
		require.NoError(t, err)

		store.AssertExpectations(t)
	})

	t.Run("fetch_failure_is_an_error_not_a_stale_success", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		mock.InOrder(
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(pageOf(testOrder("o1", order.StatusProcessing)), nil).Once(),
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(ports.OrderPage{}, errors.New("connection refused")).Once(),
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(pageOf(testOrder("o1", order.StatusProcessing)), nil).Once(),
		)

		cache := querycache.New(store, testLogger(), nil)
		key := querycache.AllOrders()

		_, err := cache.Orders(ctx, key)
		require.NoError(t, err)

		cache.InvalidateOrder(ctx, "o1") // second GetOrders fails during refetch

		view := cache.Peek(key)
		require.Error(t, view.Err)
		require.ErrorIs(t, view.Err, errs.ErrFetchFailed)
		assert.True(t, view.Stale)

		// The next read retries instead of serving the stale snapshot.
		snap, err := cache.Orders(ctx, key)
		require.NoError(t, err)
		require.Len(t, snap.Orders, 1)

		store.AssertExpectations(t)
	})

	t.Run("invalidation_during_first_inflight_fetch_discards_its_result", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		fetchStarted := make(chan struct{})
		releaseFetch := make(chan struct{})
		mock.InOrder(
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Run(func(mock.Arguments) {
					close(fetchStarted)
					<-releaseFetch
				}).
				Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once(),
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(pageOf(testOrder("o1", order.StatusInTransit)), nil).Once(),
		)

		cache := querycache.New(store, testLogger(), nil)
		key := querycache.AllOrders()

		type result struct {
			snap querycache.Snapshot
			err  error
		}
		results := make(chan result, 1)
		go func() {
			snap, err := cache.Orders(ctx, key)
			results <- result{snap: snap, err: err}
		}()

		// The mutation is confirmed while the entry's very first fetch is
		// still in flight; that fetch's response predates the mutation.
		<-fetchStarted
		cache.InvalidateOrder(ctx, "o1")
		close(releaseFetch)

		got := <-results
		require.NoError(t, got.err)
		assert.Equal(t, order.StatusInTransit, got.snap.Orders[0].DeliveryStatus,
			"a fetch overlapping an invalidation must not surface pre-mutation data")

		// And the entry cached for subsequent reads is the post-mutation one.
		after, err := cache.Orders(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, after.Orders[0].DeliveryStatus)

		store.AssertExpectations(t)
	})

	t.Run("read_after_write_reflects_confirmed_mutation", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		mock.InOrder(
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once(),
			store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
				Return(pageOf(testOrder("o1", order.StatusInTransit)), nil).Once(),
		)

		cache := querycache.New(store, testLogger(), nil)
		key := querycache.AllOrders()

		before, err := cache.Orders(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, before.Orders[0].DeliveryStatus)

		cache.InvalidateOrder(ctx, "o1")

		after, err := cache.Orders(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, after.Orders[0].DeliveryStatus)

		store.AssertExpectations(t)
	})

	t.Run("invalidation_skips_filtered_entries_not_containing_the_order", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		otherFilter := ports.OrderFilter{CustomerEmail: "other@example.com"}
		store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Twice()
		store.On("GetOrders", mock.Anything, otherFilter).
			Return(pageOf(testOrder("o9", order.StatusPending)), nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		_, err = cache.Orders(ctx, querycache.CustomerOrders("other@example.com"))
		require.NoError(t, err)

		cache.InvalidateOrder(ctx, "o1")

		// The other customer's entry is untouched and still served from cache.
		snap, err := cache.Orders(ctx, querycache.CustomerOrders("other@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "o9", snap.Orders[0].ID)

		store.AssertExpectations(t)
	})

	t.Run("returned_snapshot_is_a_copy", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		first, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		first.Orders[0].DeliveryStatus = order.StatusFailed

		second, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, second.Orders[0].DeliveryStatus)
	})
}

func TestCache_Peek(t *testing.T) {
	t.Run("unknown_key_yields_zero_view", func(t *testing.T) {
		store := new(MockOrderStore)
		cache := querycache.New(store, testLogger(), nil)

		view := cache.Peek(querycache.AllOrders())

		assert.Nil(t, view.Data)
		assert.NoError(t, view.Err)
		assert.False(t, view.Loading)
		assert.False(t, view.Stale)
	})

	t.Run("fresh_entry_is_visible_with_data", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		store.On("GetOrders", mock.Anything, ports.OrderFilter{}).
			Return(pageOf(testOrder("o1", order.StatusPending)), nil).Once()

		cache := querycache.New(store, testLogger(), nil)
		_, err := cache.Orders(ctx, querycache.AllOrders())
		require.NoError(t, err)

		view := cache.Peek(querycache.AllOrders())

		require.NotNil(t, view.Data)
		assert.NoError(t, view.Err)
		assert.False(t, view.Stale)
	})
}

func TestCache_Detail(t *testing.T) {
	t.Run("acquire_fetches_once_while_held", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		detail := testOrder("o1", order.StatusProcessing)
		store.On("GetOrder", mock.Anything, "o1").Return(&detail, nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		first, err := cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, "o1", first.ID)

		second, err := cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		store.AssertExpectations(t)
	})

	t.Run("sweep_keeps_held_entries_and_evicts_released_ones", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		detail := testOrder("o1", order.StatusProcessing)
		store.On("GetOrder", mock.Anything, "o1").Return(&detail, nil).Twice()

		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)

		assert.Equal(t, 0, cache.SweepDetails(), "held entry must survive the sweep")

		cache.ReleaseDetail("o1")
		assert.Equal(t, 1, cache.SweepDetails())

		// Next acquire goes back to the store.
		_, err = cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)

		store.AssertExpectations(t)
	})

	t.Run("cancelled_fetch_is_discarded_without_side_effects", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		store := new(MockOrderStore)
		detail := testOrder("o1", order.StatusProcessing)
		store.On("GetOrder", mock.Anything, "o1").
			Run(func(mock.Arguments) { cancel() }).
			Return(&detail, nil).Once()

		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.AcquireDetail(ctx, "o1")
		require.ErrorIs(t, err, context.Canceled)

		// Nothing was cached and no holder leaked.
		assert.Equal(t, 0, cache.SweepDetails())
	})

	t.Run("not_found_propagates", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		store.On("GetOrder", mock.Anything, "missing").
			Return(nil, errs.NewObjectNotFoundError("orderId", "missing")).Once()

		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.AcquireDetail(ctx, "missing")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("invalidation_drops_the_detail_entry", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOrderStore)
		before := testOrder("o1", order.StatusPending)
		after := testOrder("o1", order.StatusInTransit)
		mock.InOrder(
			store.On("GetOrder", mock.Anything, "o1").Return(&before, nil).Once(),
			store.On("GetOrder", mock.Anything, "o1").Return(&after, nil).Once(),
		)

		cache := querycache.New(store, testLogger(), nil)

		first, err := cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, first.DeliveryStatus)

		cache.InvalidateOrder(ctx, "o1")

		second, err := cache.AcquireDetail(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, second.DeliveryStatus)

		store.AssertExpectations(t)
	})

	t.Run("empty_order_id_is_rejected", func(t *testing.T) {
		store := new(MockOrderStore)
		cache := querycache.New(store, testLogger(), nil)

		_, err := cache.AcquireDetail(context.Background(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
