package storage

import (
	"time"

	"filmreel/internal/models"
)

// picksRecord is a cached randomized selection with its generation time.
type picksRecord struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Items       []models.Item `json:"items"`
}

// CachedPicks returns the stored selection under name when it is
// younger than maxAge, otherwise regenerates via generate and stores
// the fresh result. Used for the rotating daily-pick features.
func (s *Store) CachedPicks(name string, maxAge time.Duration, generate func() ([]models.Item, error)) ([]models.Item, error) {
	key := keyPicksPrefix + name

	rec := load(s, key, picksRecord{})
	if len(rec.Items) > 0 && s.now().Sub(rec.GeneratedAt) < maxAge {
		return rec.Items, nil
	}

	items, err := generate()
	if err != nil {
		// Serve the stale selection rather than nothing.
		if len(rec.Items) > 0 {
			return rec.Items, nil
		}
		return nil, err
	}

	save(s, key, picksRecord{GeneratedAt: s.now(), Items: items})
	return items, nil
}
