// Package pagedlist drives incremental fetch-append-dedup for one
// scrollable collection. The caller supplies the already-fetched first
// page as the seed; the controller owns everything after that: the next
// page counter, the seen-identity set, the exhausted flag, and the
// discarding of responses that arrive after a reseed or close.
//
// The trigger is external: anything that decides the user is near the
// end of the list simply calls LoadMore.
package pagedlist

import (
	"context"
	"sync"
)

// FetchFunc returns one raw page of items. An empty page means the
// source is exhausted.
type FetchFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Controller is the incremental-loading engine for one list.
type Controller[T any] struct {
	mu         sync.Mutex
	items      []T
	seen       map[string]struct{}
	page       int
	loading    bool
	exhausted  bool
	closed     bool
	generation uint64

	keyOf func(T) string
	fetch FetchFunc[T]
}

// New seeds a controller with the caller-supplied first page. The seed
// is deduplicated against itself, keeping first occurrences in order;
// the next fetch will request page 2.
func New[T any](seed []T, keyOf func(T) string, fetch FetchFunc[T]) *Controller[T] {
	c := &Controller[T]{keyOf: keyOf, fetch: fetch}
	c.reset(seed)
	return c
}

// reset installs a fresh seed. Caller must hold mu (or own c exclusively).
func (c *Controller[T]) reset(seed []T) {
	c.seen = make(map[string]struct{}, len(seed))
	c.items = make([]T, 0, len(seed))
	for _, item := range seed {
		k := c.keyOf(item)
		if _, dup := c.seen[k]; dup {
			continue
		}
		c.seen[k] = struct{}{}
		c.items = append(c.items, item)
	}
	c.page = 2
	c.exhausted = false
	c.loading = false
}

// LoadMore fetches and appends the next page. It is a no-op while a
// fetch is outstanding or once the source is exhausted. A fetch error
// leaves all state untouched so the same page can be retried.
func (c *Controller[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.closed || c.exhausted || c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	page := c.page
	gen := c.generation
	c.mu.Unlock()

	fetched, err := c.fetch(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		// The list was reseeded or torn down mid-flight; the
		// response belongs to a view that no longer exists.
		return nil
	}
	c.loading = false

	if err != nil {
		return err
	}

	if len(fetched) == 0 {
		c.exhausted = true
		return nil
	}

	// A page of pure duplicates appends nothing but does not exhaust:
	// only an empty raw page does.
	for _, item := range fetched {
		k := c.keyOf(item)
		if _, dup := c.seen[k]; dup {
			continue
		}
		c.seen[k] = struct{}{}
		c.items = append(c.items, item)
	}
	c.page++
	return nil
}

// Reseed restarts the controller for a new filter: fresh seed, fresh
// seen set, page counter back to "2 is next", exhaustion cleared. Any
// in-flight fetch result is discarded.
func (c *Controller[T]) Reseed(seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.reset(seed)
}

// Close marks the controller dead; late responses are dropped and
// further LoadMore calls are no-ops.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.generation++
	c.mu.Unlock()
}

// Items returns a copy of the accumulated list.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// HasMore reports whether another page may exist.
func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.exhausted
}

// Loading reports whether a fetch is outstanding.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Page returns the page number the next LoadMore will request.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Len returns the number of accumulated items.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
