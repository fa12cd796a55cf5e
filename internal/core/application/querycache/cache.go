package querycache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"
)

// Snapshot is one confirmed collection read: the orders plus the
// store-reported aggregates from the response envelope.
type Snapshot struct {
	Orders      []order.Order
	TotalOrders int
	TotalAmount float64
	FetchedAt   time.Time
}

// View is the non-blocking consumer-visible state of a cache entry.
// Data and Err can coexist: a stale snapshot is retained through a failed
// refetch, but Stale marks it as not authoritative.
type View struct {
	Data    *Snapshot
	Err     error
	Loading bool
	Stale   bool
}

type collectionEntry struct {
	snap     *Snapshot
	err      error
	stale    bool
	gen      uint64
	inflight chan struct{}
}

type detailEntry struct {
	ord     *order.Order
	holders int
}

// Cache holds the last confirmed collection reads keyed by QueryKey, and
// per-order detail entries with holder counting. It is always subordinate to
// the backing store: entries carry no TTL, and staleness is driven solely by
// explicit invalidation after a confirmed mutation.
//
// Concurrent readers of the same key share a single fetch. A fetch that
// completes after its entry was invalidated is discarded and retried, so an
// invalidation issued between fetch start and fetch completion can never
// resurrect pre-mutation data as fresh.
type Cache struct {
	store   ports.OrderStore
	logger  *slog.Logger
	metrics *metrics.CacheMetrics

	mu          sync.Mutex
	collections map[QueryKey]*collectionEntry
	details     map[string]*detailEntry
}

// New creates a Cache reading through store. metrics may be nil.
func New(store ports.OrderStore, logger *slog.Logger, cacheMetrics *metrics.CacheMetrics) *Cache {
	return &Cache{
		store:       store,
		logger:      logger.With("component", "query_cache"),
		metrics:     cacheMetrics,
		collections: make(map[QueryKey]*collectionEntry),
		details:     make(map[string]*detailEntry),
	}
}

// Orders returns the collection for key, fetching from the store when no
// fresh entry exists. A fresh entry is one with data, no recorded error and
// no pending invalidation; anything else is refetched before being served.
//
// A failed fetch returns a FetchFailed error; a previously cached snapshot
// is never silently served in its place. Returned snapshots are copies; the
// caller must not rely on mutating them.
func (c *Cache) Orders(ctx context.Context, key QueryKey) (Snapshot, error) {
	for {
		c.mu.Lock()
		entry, ok := c.collections[key]
		if !ok {
			entry = &collectionEntry{}
			c.collections[key] = entry
		}

		if entry.inflight == nil && entry.snap != nil && !entry.stale && entry.err == nil {
			snap := cloneSnapshot(entry.snap)
			c.mu.Unlock()
			c.metrics.Hit()
			return snap, nil
		}

		if entry.inflight != nil {
			done := entry.inflight
			c.mu.Unlock()
			select {
			case <-done:
				continue
			case <-ctx.Done():
				return Snapshot{}, ctx.Err()
			}
		}

		done := make(chan struct{})
		entry.inflight = done
		startGen := entry.gen
		c.mu.Unlock()
		c.metrics.Miss()

		page, fetchErr := c.store.GetOrders(ctx, key.Filter())

		c.mu.Lock()
		entry.inflight = nil
		close(done)

		if entry.gen != startGen {
			// Invalidated while the fetch was in flight; the response may
			// predate the mutation, so discard it and fetch again.
			c.mu.Unlock()
			continue
		}

		if fetchErr != nil {
			entry.err = wrapFetchError(key, fetchErr)
			entry.stale = entry.snap != nil
			err := entry.err
			c.mu.Unlock()
			return Snapshot{}, err
		}

		entry.snap = &Snapshot{
			Orders:      page.Orders,
			TotalOrders: page.TotalOrders,
			TotalAmount: page.TotalAmount,
			FetchedAt:   time.Now(),
		}
		entry.err = nil
		entry.stale = false
		snap := cloneSnapshot(entry.snap)
		c.mu.Unlock()
		return snap, nil
	}
}

// Peek reports the consumer-visible state of key without triggering a fetch.
// An unknown key yields a zero View.
func (c *Cache) Peek(key QueryKey) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.collections[key]
	if !ok {
		return View{}
	}

	view := View{
		Err:     entry.err,
		Loading: entry.inflight != nil,
		Stale:   entry.stale,
	}
	if entry.snap != nil {
		snap := cloneSnapshot(entry.snap)
		view.Data = &snap
	}
	return view
}

// AcquireDetail returns the detail entry for orderID, fetching it on demand.
// The entry stays resident while at least one holder has acquired and not
// yet released it; the sweep job evicts entries with no holders.
//
// If ctx is cancelled before the fetch resolves (the detail view was closed)
// the result is discarded without any cache write.
func (c *Cache) AcquireDetail(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	c.mu.Lock()
	if entry, ok := c.details[orderID]; ok && entry.ord != nil {
		entry.holders++
		ord := *entry.ord
		c.mu.Unlock()
		c.metrics.Hit()
		return &ord, nil
	}
	c.mu.Unlock()
	c.metrics.Miss()

	ord, err := c.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		return nil, errs.NewFetchFailedErrorWithCause("order:"+orderID, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.mu.Lock()
	entry, ok := c.details[orderID]
	if !ok {
		entry = &detailEntry{}
		c.details[orderID] = entry
	}
	entry.ord = ord
	entry.holders++
	result := *ord
	c.mu.Unlock()
	return &result, nil
}

// ReleaseDetail drops one holder of orderID's detail entry. The entry itself
// survives until the next sweep so a reopened view can reuse it. Releasing an
// already-evicted entry is a no-op.
func (c *Cache) ReleaseDetail(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.details[orderID]; ok && entry.holders > 0 {
		entry.holders--
	}
}

// SweepDetails evicts every detail entry with no remaining holders and
// returns the number evicted. Eviction is memory hygiene for closed views,
// not expiry: a fresh fetch happens on the next acquire regardless.
func (c *Cache) SweepDetails() int {
	c.mu.Lock()
	evicted := 0
	for id, entry := range c.details {
		if entry.holders <= 0 {
			delete(c.details, id)
			evicted++
		}
	}
	c.mu.Unlock()

	c.metrics.DetailEvictions(evicted)
	return evicted
}

// InvalidateOrder marks every collection entry whose result could be affected
// by a confirmed mutation of orderID as stale (the all-orders entry
// unconditionally, filtered entries when their cached snapshot contains the
// order), drops the order's detail entry, and eagerly refetches the affected
// collections before returning. The issuing session's next read of any
// affected key is therefore authoritative.
//
// An entry whose fetch is still in flight gets its generation bumped too,
// even before it holds any snapshot: the pending fetch started before the
// mutation, so its result may predate it and must be discarded and retried.
//
// A refetch failure is logged and leaves the entry in a visible stale+error
// state; it does not undo the mutation, which the store has already
// confirmed.
func (c *Cache) InvalidateOrder(ctx context.Context, orderID string) {
	c.metrics.Invalidation()

	c.mu.Lock()
	delete(c.details, orderID)

	affected := make([]QueryKey, 0, len(c.collections))
	for key, entry := range c.collections {
		inflight := entry.inflight != nil
		if entry.snap == nil && !inflight {
			continue
		}
		if key.IsAllOrders() || inflight || snapshotContains(entry.snap, orderID) {
			entry.gen++
			if entry.snap != nil {
				entry.stale = true
				affected = append(affected, key)
			}
		}
	}
	c.mu.Unlock()

	for _, key := range affected {
		if _, err := c.Orders(ctx, key); err != nil {
			c.logger.WarnContext(ctx, "refetch after invalidation failed",
				"query", key.String(), "order_id", orderID, "error", err)
		}
	}
}

func snapshotContains(snap *Snapshot, orderID string) bool {
	for _, o := range snap.Orders {
		if o.ID == orderID {
			return true
		}
	}
	return false
}

func cloneSnapshot(snap *Snapshot) Snapshot {
	clone := *snap
	clone.Orders = make([]order.Order, len(snap.Orders))
	copy(clone.Orders, snap.Orders)
	return clone
}

func wrapFetchError(key QueryKey, cause error) error {
	if errors.Is(cause, errs.ErrFetchFailed) || errors.Is(cause, errs.ErrObjectNotFound) {
		return cause
	}
	return errs.NewFetchFailedErrorWithCause(key.String(), cause)
}
