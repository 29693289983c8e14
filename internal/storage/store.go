package storage

import (
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"filmreel/internal/models"
	"filmreel/internal/syncbus"
)

// Record keys. The layout is a fixed set of named JSON records.
const (
	KeyProfile       = "filmreel_user_profile"
	KeyMoodHistory   = "filmreel_mood_history"
	KeyWatchlist     = "filmreel_watchlist"
	KeyWatched       = "filmreel_watched"
	KeyWatchProgress = "filmreel_watch_progress"
	KeyNotifications = "filmreel_notifications"
	KeyNotifCleared  = "filmreel_notifications_cleared"

	keyPicksPrefix = "filmreel_picks_"
)

// Collection caps. Oldest entries are evicted first.
const (
	maxMoodHistory = 10
	maxWatched     = 100
)

// Store is the typed persistence layer. Every mutating operation
// announces the changed key on the bus after the write lands, so live
// observers re-reading the key see the new value.
type Store struct {
	backend Backend
	bus     *syncbus.Bus
	now     func() time.Time
}

// New creates a Store over the given backend and bus.
func New(backend Backend, bus *syncbus.Bus) *Store {
	return &Store{backend: backend, bus: bus, now: time.Now}
}

// Bus returns the change bus observers subscribe on.
func (s *Store) Bus() *syncbus.Bus {
	return s.bus
}

// load reads and decodes the record at key, returning def when the key
// is absent, the backend fails, or the stored bytes are corrupt.
func load[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		slog.Warn("storage read failed", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("corrupt record, using default", "key", key, "error", err)
		return def
	}
	return v
}

// save serializes v, writes it, and announces the key. Write failures
// are swallowed (best-effort persistence) and the announcement is
// skipped so observers never refresh into stale state.
func save[T any](s *Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to encode record", "key", key, "error", err)
		return
	}
	if err := s.backend.Set(key, raw); err != nil {
		slog.Warn("storage write failed", "key", key, "error", err)
		return
	}
	s.bus.Announce(key)
}

// ---- Profile ----

// Profile returns the user profile, defaulting to a zero profile.
func (s *Store) Profile() models.UserProfile {
	return load(s, KeyProfile, models.UserProfile{})
}

// SaveProfile replaces the profile wholesale.
func (s *Store) SaveProfile(p models.UserProfile) {
	save(s, KeyProfile, p)
}

// ResetProfile restores the default profile.
func (s *Store) ResetProfile() {
	save(s, KeyProfile, models.UserProfile{})
}

// ---- Mood history ----

// MoodHistory returns past survey results, newest first.
func (s *Store) MoodHistory() []models.MoodResult {
	return load(s, KeyMoodHistory, []models.MoodResult{})
}

// AddMoodResult prepends a survey result, keeping the newest entries
// and evicting the oldest beyond the cap.
func (s *Store) AddMoodResult(r models.MoodResult) {
	history := append([]models.MoodResult{r}, s.MoodHistory()...)
	if len(history) > maxMoodHistory {
		history = history[:maxMoodHistory]
	}
	save(s, KeyMoodHistory, history)
}

// ---- Watchlist ----

// Watchlist returns saved titles, newest first.
func (s *Store) Watchlist() []models.WatchlistItem {
	return load(s, KeyWatchlist, []models.WatchlistItem{})
}

// AddToWatchlist saves a title. Adding a title already present is a
// no-op; identity is the composite (mediaType, id) key.
func (s *Store) AddToWatchlist(item models.WatchlistItem) {
	list := s.Watchlist()
	for _, existing := range list {
		if existing.Key == item.Key {
			return
		}
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = s.now()
	}
	save(s, KeyWatchlist, append([]models.WatchlistItem{item}, list...))
}

// RemoveFromWatchlist drops a title; absent keys are a no-op.
func (s *Store) RemoveFromWatchlist(key models.Key) {
	list := s.Watchlist()
	kept := list[:0:0]
	for _, item := range list {
		if item.Key != key {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return
	}
	save(s, KeyWatchlist, kept)
}

// InWatchlist reports whether the title is saved.
func (s *Store) InWatchlist(key models.Key) bool {
	for _, item := range s.Watchlist() {
		if item.Key == key {
			return true
		}
	}
	return false
}

// ---- Watched set ----

// WatchedKeys returns watched title keys, newest first.
func (s *Store) WatchedKeys() []string {
	return load(s, KeyWatched, []string{})
}

// MarkWatched records a title as watched. Duplicates are dropped and
// the set is capped, evicting the oldest entries.
func (s *Store) MarkWatched(key models.Key) {
	ks := key.String()
	current := s.WatchedKeys()
	for _, existing := range current {
		if existing == ks {
			return
		}
	}
	watched := append([]string{ks}, current...)
	if len(watched) > maxWatched {
		watched = watched[:maxWatched]
	}
	save(s, KeyWatched, watched)
}

// UnmarkWatched removes a title from the watched set.
func (s *Store) UnmarkWatched(key models.Key) {
	ks := key.String()
	current := s.WatchedKeys()
	kept := current[:0:0]
	for _, existing := range current {
		if existing != ks {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(current) {
		return
	}
	save(s, KeyWatched, kept)
}

// IsWatched reports whether the title has been marked watched.
func (s *Store) IsWatched(key models.Key) bool {
	ks := key.String()
	for _, existing := range s.WatchedKeys() {
		if existing == ks {
			return true
		}
	}
	return false
}

// ---- Watch progress ----

// Progress returns elapsed seconds per title key string.
func (s *Store) Progress() map[string]float64 {
	return load(s, KeyWatchProgress, map[string]float64{})
}

// SaveProgress upserts the resume position for a title.
func (s *Store) SaveProgress(key models.Key, seconds float64) {
	progress := s.Progress()
	progress[key.String()] = seconds
	save(s, KeyWatchProgress, progress)
}

// RemoveProgress drops the resume position for a title.
func (s *Store) RemoveProgress(key models.Key) {
	progress := s.Progress()
	if _, ok := progress[key.String()]; !ok {
		return
	}
	delete(progress, key.String())
	save(s, KeyWatchProgress, progress)
}

// ProgressFor returns the resume position for a title, zero if none.
func (s *Store) ProgressFor(key models.Key) float64 {
	return s.Progress()[key.String()]
}

// ---- Notification state ----

// NotificationReads returns the per-id read flags.
func (s *Store) NotificationReads() map[string]bool {
	return load(s, KeyNotifications, map[string]bool{})
}

// SaveNotificationReads replaces the per-id read flags.
func (s *Store) SaveNotificationReads(reads map[string]bool) {
	save(s, KeyNotifications, reads)
}

// ClearedNotificationIDs returns ids the user dismissed; cleared ids
// never resurface even though they stay in the static registry.
func (s *Store) ClearedNotificationIDs() []string {
	return load(s, KeyNotifCleared, []string{})
}

// SaveClearedNotificationIDs replaces the dismissed-id set.
func (s *Store) SaveClearedNotificationIDs(ids []string) {
	save(s, KeyNotifCleared, ids)
}
