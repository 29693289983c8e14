package syncbus

import "testing"

func TestAnnounceReachesAllSubscribers(t *testing.T) {
	bus := New()
	a, b := 0, 0
	defer bus.Subscribe("watchlist", func() { a++ })()
	defer bus.Subscribe("watchlist", func() { b++ })()
	defer bus.Subscribe("profile", func() { t.Error("wrong key notified") })()

	bus.Announce("watchlist")

	if a != 1 || b != 1 {
		t.Errorf("expected both subscribers notified once, got %d and %d", a, b)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	bus := New()
	calls := 0
	unsubscribe := bus.Subscribe("watchlist", func() { calls++ })

	bus.Announce("watchlist")
	unsubscribe()
	bus.Announce("watchlist")

	if calls != 1 {
		t.Errorf("expected no notifications after unsubscribe, got %d calls", calls)
	}
}

func TestWatchRefreshesOnAnnounce(t *testing.T) {
	bus := New()
	value := "old"
	w := NewWatch(bus, "profile", func() string { return value })
	defer w.Close()

	if w.Value() != "old" {
		t.Fatalf("expected seeded value, got %q", w.Value())
	}

	value = "new"
	bus.Announce("profile")
	if w.Value() != "new" {
		t.Errorf("expected refreshed value, got %q", w.Value())
	}
}

func TestClosedWatchIgnoresLateAnnouncements(t *testing.T) {
	bus := New()
	value := "old"
	w := NewWatch(bus, "profile", func() string { return value })
	w.Close()

	value = "new"
	bus.Announce("profile")
	if w.Value() != "old" {
		t.Errorf("closed watch must not refresh, got %q", w.Value())
	}
}
