package syncbus

import "sync"

// Watch holds a live view of one store key: it re-runs the getter on
// every announcement for the key and caches the result. It is the
// observer side of the bridge contract.
type Watch[T any] struct {
	mu     sync.RWMutex
	value  T
	live   bool
	cancel func()
}

// NewWatch subscribes to key and seeds the view with the getter's
// current value.
func NewWatch[T any](bus *Bus, key string, getter func() T) *Watch[T] {
	w := &Watch[T]{value: getter(), live: true}
	w.cancel = bus.Subscribe(key, func() {
		v := getter()
		w.mu.Lock()
		if w.live {
			w.value = v
		}
		w.mu.Unlock()
	})
	return w
}

// Value returns the view's current value.
func (w *Watch[T]) Value() T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.value
}

// Close unsubscribes; a late announcement never mutates a closed view.
func (w *Watch[T]) Close() {
	w.mu.Lock()
	w.live = false
	w.mu.Unlock()
	w.cancel()
}
