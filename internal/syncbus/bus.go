// Package syncbus is the change-notification bridge over the persistent
// store. Every write to a store key is announced on the bus; any number
// of observers of that key refresh by re-reading through their getter.
// Two transports feed the same bus: the store announces its own writes
// synchronously in-process, and a redis relay announces writes made by
// other processes.
package syncbus

import (
	"sync"

	"github.com/google/uuid"
)

// Bus fans out key-change announcements to subscribers of that key.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[string]func()
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string]map[string]func())}
}

// Subscribe registers fn to run on every announcement for key. The
// returned func removes the subscription; after it returns, fn is never
// invoked again.
func (b *Bus) Subscribe(key string, fn func()) (unsubscribe func()) {
	token := uuid.NewString()

	b.mu.Lock()
	if b.subs[key] == nil {
		b.subs[key] = make(map[string]func())
	}
	b.subs[key][token] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs[key], token)
		b.mu.Unlock()
	}
}

// Announce synchronously invokes every live subscriber for key. The
// caller must have made the changed state durable first, so subscribers
// re-reading inside their callback observe the new value.
func (b *Bus) Announce(key string) {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.subs[key]))
	for _, fn := range b.subs[key] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
