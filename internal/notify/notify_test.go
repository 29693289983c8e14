package notify

import (
	"testing"

	"filmreel/internal/storage"
	"filmreel/internal/syncbus"
)

func newTestCenter() *Center {
	return NewCenter(storage.New(storage.NewMemoryBackend(), syncbus.New()))
}

func TestRegistryEntriesDefaultUnread(t *testing.T) {
	c := newTestCenter()

	list := c.List()
	if len(list) != len(Registry) {
		t.Fatalf("expected the full registry, got %d entries", len(list))
	}
	for _, n := range list {
		if n.Read {
			t.Errorf("entry %s should default to unread", n.ID)
		}
	}
	if c.UnreadCount() != len(Registry) {
		t.Errorf("expected %d unread, got %d", len(Registry), c.UnreadCount())
	}
	// Newest first.
	for i := 1; i < len(list); i++ {
		if list[i].Date.After(list[i-1].Date) {
			t.Error("notifications must be ordered newest first")
		}
	}
}

func TestMarkAllRead(t *testing.T) {
	c := newTestCenter()
	c.MarkAllRead()

	if c.UnreadCount() != 0 {
		t.Errorf("expected 0 unread after MarkAllRead, got %d", c.UnreadCount())
	}
	for _, n := range c.List() {
		if !n.Read {
			t.Errorf("entry %s should be read", n.ID)
		}
	}
}

func TestClearedIDsDoNotRecur(t *testing.T) {
	c := newTestCenter()
	c.ClearAll()

	if len(c.List()) != 0 {
		t.Fatal("expected no entries after ClearAll")
	}

	// A fresh Center over the same store still suppresses them: the
	// cleared-id set wins over the static registry on every load.
	again := NewCenter(c.store)
	if len(again.List()) != 0 {
		t.Error("cleared ids must not resurface on reload")
	}
}
