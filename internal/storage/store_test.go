package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"filmreel/internal/models"
	"filmreel/internal/syncbus"
)

func newTestStore() *Store {
	return New(NewMemoryBackend(), syncbus.New())
}

func movieKey(id int) models.Key {
	return models.Key{Type: models.MediaMovie, ID: id}
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	s := newTestStore()
	item := models.WatchlistItem{Key: movieKey(603), Title: "The Matrix"}

	s.AddToWatchlist(item)
	s.AddToWatchlist(item)

	list := s.Watchlist()
	if len(list) != 1 {
		t.Fatalf("expected exactly 1 entry after double add, got %d", len(list))
	}
	if !s.InWatchlist(movieKey(603)) {
		t.Error("expected item in watchlist")
	}
}

func TestWatchlistRemoveAbsentIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddToWatchlist(models.WatchlistItem{Key: movieKey(603), Title: "The Matrix"})

	s.RemoveFromWatchlist(movieKey(42))
	if len(s.Watchlist()) != 1 {
		t.Fatal("removing an absent key must not change the watchlist")
	}

	s.RemoveFromWatchlist(movieKey(603))
	if len(s.Watchlist()) != 0 {
		t.Fatal("expected empty watchlist after removal")
	}
}

func TestWatchlistKeysByMediaType(t *testing.T) {
	s := newTestStore()
	s.AddToWatchlist(models.WatchlistItem{Key: models.Key{Type: models.MediaMovie, ID: 7}, Title: "Movie Seven"})
	s.AddToWatchlist(models.WatchlistItem{Key: models.Key{Type: models.MediaTV, ID: 7}, Title: "Show Seven"})

	if len(s.Watchlist()) != 2 {
		t.Fatal("a movie and a show sharing a numeric id are distinct entries")
	}

	s.RemoveFromWatchlist(models.Key{Type: models.MediaTV, ID: 7})
	list := s.Watchlist()
	if len(list) != 1 || list[0].Key.Type != models.MediaMovie {
		t.Fatal("removing the show must keep the movie")
	}
}

func TestMoodHistoryCapped(t *testing.T) {
	s := newTestStore()
	for i := 1; i <= 11; i++ {
		s.AddMoodResult(models.MoodResult{
			RecommendedGenreID: i,
			MoodLabel:          fmt.Sprintf("mood-%d", i),
		})
	}

	history := s.MoodHistory()
	if len(history) != 10 {
		t.Fatalf("expected 10 entries after 11 adds, got %d", len(history))
	}
	if history[0].RecommendedGenreID != 11 {
		t.Errorf("expected newest entry first, got genre %d", history[0].RecommendedGenreID)
	}
	// The oldest (genre 1) was evicted; genre 2 is now the last.
	if history[9].RecommendedGenreID != 2 {
		t.Errorf("expected oldest surviving entry to be genre 2, got %d", history[9].RecommendedGenreID)
	}
}

func TestWatchedSetCappedAndDeduped(t *testing.T) {
	s := newTestStore()
	for i := 1; i <= 105; i++ {
		s.MarkWatched(movieKey(i))
	}
	s.MarkWatched(movieKey(105)) // duplicate

	watched := s.WatchedKeys()
	if len(watched) != 100 {
		t.Fatalf("expected watched set capped at 100, got %d", len(watched))
	}
	if watched[0] != "movie-105" {
		t.Errorf("expected newest first, got %s", watched[0])
	}
	if !s.IsWatched(movieKey(105)) {
		t.Error("expected movie-105 watched")
	}
	if s.IsWatched(movieKey(1)) {
		t.Error("expected movie-1 evicted")
	}

	s.UnmarkWatched(movieKey(105))
	if s.IsWatched(movieKey(105)) {
		t.Error("expected movie-105 removable independently")
	}
}

func TestProgressUpsertAndRemove(t *testing.T) {
	s := newTestStore()
	s.SaveProgress(movieKey(603), 120.5)
	s.SaveProgress(movieKey(603), 240)

	if got := s.ProgressFor(movieKey(603)); got != 240 {
		t.Errorf("expected upserted progress 240, got %v", got)
	}

	s.RemoveProgress(movieKey(603))
	if got := s.ProgressFor(movieKey(603)); got != 0 {
		t.Errorf("expected progress removed, got %v", got)
	}
}

func TestCorruptRecordReadsAsDefault(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend, syncbus.New())

	if err := backend.Set(KeyProfile, []byte("{definitely not json")); err != nil {
		t.Fatal(err)
	}

	profile := s.Profile()
	if profile != (models.UserProfile{}) {
		t.Errorf("corrupt record must read as the typed default, got %+v", profile)
	}
}

// failingBackend rejects every write.
type failingBackend struct {
	*MemoryBackend
}

func (f *failingBackend) Set(key string, value []byte) error {
	return errors.New("quota exceeded")
}

func TestWriteFailureSwallowedAndNotAnnounced(t *testing.T) {
	bus := syncbus.New()
	s := New(&failingBackend{MemoryBackend: NewMemoryBackend()}, bus)

	announced := 0
	unsubscribe := bus.Subscribe(KeyWatchlist, func() { announced++ })
	defer unsubscribe()

	s.AddToWatchlist(models.WatchlistItem{Key: movieKey(603), Title: "The Matrix"})

	if announced != 0 {
		t.Error("a failed write must not announce a change")
	}
	if len(s.Watchlist()) != 0 {
		t.Error("prior state must be intact after a failed write")
	}
}

func TestSetThenGetSameTick(t *testing.T) {
	s := newTestStore()

	var observed []models.WatchlistItem
	unsubscribe := s.Bus().Subscribe(KeyWatchlist, func() {
		observed = s.Watchlist()
	})
	defer unsubscribe()

	s.AddToWatchlist(models.WatchlistItem{Key: movieKey(603), Title: "The Matrix"})

	// The announcement fired synchronously after the durable write, so
	// the subscriber's re-read saw the new value already.
	if len(observed) != 1 {
		t.Fatalf("subscriber re-read must observe the write, got %d items", len(observed))
	}
}

func TestTwoObserversStayInSync(t *testing.T) {
	s := newTestStore()

	// Two independent views of the same key.
	a := syncbus.NewWatch(s.Bus(), KeyWatchlist, s.Watchlist)
	defer a.Close()
	b := syncbus.NewWatch(s.Bus(), KeyWatchlist, s.Watchlist)
	defer b.Close()

	// A mutation from one view's code path reaches the other without
	// any manual refresh.
	s.AddToWatchlist(models.WatchlistItem{Key: movieKey(603), Title: "The Matrix"})

	if len(a.Value()) != 1 || len(b.Value()) != 1 {
		t.Fatalf("both observers must see the mutation, got %d and %d",
			len(a.Value()), len(b.Value()))
	}
	if b.Value()[0].Title != "The Matrix" {
		t.Errorf("observer read stale data: %+v", b.Value()[0])
	}
}

func TestCachedPicksRotationWindow(t *testing.T) {
	s := newTestStore()
	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	generations := 0
	generate := func() ([]models.Item, error) {
		generations++
		return []models.Item{{MediaType: models.MediaMovie, ID: generations, Title: "Pick"}}, nil
	}

	first, err := s.CachedPicks("daily", 12*time.Hour, generate)
	if err != nil {
		t.Fatal(err)
	}

	// Within the window the stored selection is reused.
	current = current.Add(6 * time.Hour)
	again, err := s.CachedPicks("daily", 12*time.Hour, generate)
	if err != nil {
		t.Fatal(err)
	}
	if generations != 1 {
		t.Fatalf("expected 1 generation within the window, got %d", generations)
	}
	if again[0].ID != first[0].ID {
		t.Error("expected the cached selection to be reused")
	}

	// Past the window it regenerates.
	current = current.Add(7 * time.Hour)
	fresh, err := s.CachedPicks("daily", 12*time.Hour, generate)
	if err != nil {
		t.Fatal(err)
	}
	if generations != 2 {
		t.Fatalf("expected regeneration after the window, got %d generations", generations)
	}
	if fresh[0].ID == first[0].ID {
		t.Error("expected a fresh selection after the window")
	}
}

func TestCachedPicksServesStaleOnGenerateFailure(t *testing.T) {
	s := newTestStore()
	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	ok := func() ([]models.Item, error) {
		return []models.Item{{MediaType: models.MediaMovie, ID: 1}}, nil
	}
	if _, err := s.CachedPicks("daily", 12*time.Hour, ok); err != nil {
		t.Fatal(err)
	}

	current = current.Add(13 * time.Hour)
	items, err := s.CachedPicks("daily", 12*time.Hour, func() ([]models.Item, error) {
		return nil, errors.New("remote down")
	})
	if err != nil {
		t.Fatalf("stale selection should be served on failure, got %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Error("expected the stale selection")
	}
}
