// Package genres is a synchronous genre id -> name lookup, seeded with
// the standard movie genre list and enriched at runtime once the
// remote genre list resolves.
package genres

import (
	"sort"
	"sync"

	"filmreel/internal/models"
)

var seed = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Sci-Fi",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// Map is a concurrency-safe genre lookup.
type Map struct {
	mu    sync.RWMutex
	names map[int]string
}

// NewMap creates a Map pre-populated with the standard genre list.
func NewMap() *Map {
	names := make(map[int]string, len(seed))
	for id, name := range seed {
		names[id] = name
	}
	return &Map{names: names}
}

// Name returns the display name for a genre id, "Film" when unknown.
func (m *Map) Name(id int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if name, ok := m.names[id]; ok {
		return name
	}
	return "Film"
}

// Seed merges remotely fetched genres into the lookup.
func (m *Map) Seed(gs []models.Genre) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range gs {
		m.names[g.ID] = g.Name
	}
}

// All returns the known genres sorted by id, for matching and display.
func (m *Map) All() []models.Genre {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Genre, 0, len(m.names))
	for id, name := range m.names {
		out = append(out, models.Genre{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
