// Package notify merges the static notification registry with the
// locally persisted read/cleared state. The registry is the canonical
// set; the only locally owned data are the per-id read flags and the
// cleared-id set that keeps dismissed entries from resurfacing.
package notify

import (
	"sort"
	"time"

	"filmreel/internal/models"
	"filmreel/internal/storage"
)

// Registry is the externally defined notification set.
var Registry = []models.Notification{
	{
		ID:      "welcome-1",
		Title:   "Welcome to FilmReel!",
		Message: "Take a mood survey to get personalized movie recommendations.",
		Date:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:      "tv-support-1",
		Title:   "TV shows have arrived",
		Message: "Browse, track and watch series with full season and episode support.",
		Date:    time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:      "hidden-gems-1",
		Title:   "Hidden Gems",
		Message: "Discover highly rated titles you may have missed, refreshed twice a day.",
		Date:    time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC),
	},
}

// Center exposes the merged notification view over the store.
type Center struct {
	store    *storage.Store
	registry []models.Notification
}

// NewCenter creates a Center over the default registry.
func NewCenter(store *storage.Store) *Center {
	return &Center{store: store, registry: Registry}
}

// List returns live notifications newest first. Registry entries with
// no persisted state default to unread; cleared ids are suppressed.
func (c *Center) List() []models.Notification {
	reads := c.store.NotificationReads()
	cleared := make(map[string]struct{})
	for _, id := range c.store.ClearedNotificationIDs() {
		cleared[id] = struct{}{}
	}

	out := make([]models.Notification, 0, len(c.registry))
	for _, n := range c.registry {
		if _, gone := cleared[n.ID]; gone {
			continue
		}
		n.Read = reads[n.ID]
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// UnreadCount returns the number of live unread notifications.
func (c *Center) UnreadCount() int {
	count := 0
	for _, n := range c.List() {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flags every live notification as read.
func (c *Center) MarkAllRead() {
	reads := c.store.NotificationReads()
	for _, n := range c.List() {
		reads[n.ID] = true
	}
	c.store.SaveNotificationReads(reads)
}

// ClearAll dismisses every live notification permanently.
func (c *Center) ClearAll() {
	cleared := c.store.ClearedNotificationIDs()
	seen := make(map[string]struct{}, len(cleared))
	for _, id := range cleared {
		seen[id] = struct{}{}
	}
	for _, n := range c.List() {
		if _, dup := seen[n.ID]; !dup {
			cleared = append(cleared, n.ID)
		}
	}
	c.store.SaveClearedNotificationIDs(cleared)
}
