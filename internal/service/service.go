// Package service composes the metadata client, the persistent store
// and the list controllers into the operations the HTTP surface serves.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"filmreel/internal/genres"
	"filmreel/internal/models"
	"filmreel/internal/pagedlist"
	"filmreel/internal/storage"
	"filmreel/internal/tmdb"
)

const (
	// RotationWindow bounds how long a randomized pick selection is
	// reused before being regenerated.
	RotationWindow = 12 * time.Hour

	maxGenreRows  = 6
	dailyPickSize = 5
)

// Service is the discovery service layer.
type Service struct {
	client *tmdb.Client
	store  *storage.Store
	genres *genres.Map

	mu       sync.RWMutex
	rows     map[string]*Row
	rowOrder []string
}

// Row is one long-lived scrollable list: a seeded controller plus its
// display metadata.
type Row struct {
	Name    string
	Title   string
	GenreID int
	List    *pagedlist.Controller[models.Item]
}

// RowView is the serializable snapshot of a row.
type RowView struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	GenreID int           `json:"genre_id,omitempty"`
	HasMore bool          `json:"has_more"`
	Items   []models.Item `json:"items"`
}

// New creates the service.
func New(client *tmdb.Client, store *storage.Store, gm *genres.Map) *Service {
	return &Service{
		client: client,
		store:  store,
		genres: gm,
		rows:   make(map[string]*Row),
	}
}

// Store exposes the persistent store to the HTTP layer.
func (s *Service) Store() *storage.Store {
	return s.store
}

// Genres exposes the genre lookup.
func (s *Service) Genres() *genres.Map {
	return s.genres
}

// Client exposes the metadata client.
func (s *Service) Client() *tmdb.Client {
	return s.client
}

func itemKey(it models.Item) string {
	return it.Key().String()
}

// InitRows seeds the home rows: trending, the first genres, and the
// mixed movie/TV anime row. Each row owns a list controller seeded
// with its first page.
func (s *Service) InitRows(ctx context.Context) error {
	genreList, err := s.client.Genres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}
	s.genres.Seed(genreList)

	popular, err := s.client.PopularMovies(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to fetch trending seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addRowLocked(&Row{
		Name:  "trending",
		Title: "Trending Now",
		List: pagedlist.New(models.MovieItems(popular), itemKey,
			func(ctx context.Context, page int) ([]models.Item, error) {
				movies, err := s.client.PopularMovies(ctx, page)
				if err != nil {
					return nil, err
				}
				return models.MovieItems(movies), nil
			}),
	})

	for i, g := range genreList {
		if i >= maxGenreRows {
			break
		}
		genreID := g.ID
		seed, err := s.client.MoviesByGenre(ctx, genreID, 1)
		if err != nil {
			slog.Warn("skipping genre row", "genre", g.Name, "error", err)
			continue
		}
		s.addRowLocked(&Row{
			Name:    fmt.Sprintf("genre-%d", genreID),
			Title:   g.Name,
			GenreID: genreID,
			List: pagedlist.New(models.MovieItems(seed), itemKey,
				func(ctx context.Context, page int) ([]models.Item, error) {
					movies, err := s.client.MoviesByGenre(ctx, genreID, page)
					if err != nil {
						return nil, err
					}
					return models.MovieItems(movies), nil
				}),
		})
	}

	animeSeed, err := s.AnimePage(ctx, 1)
	if err != nil {
		slog.Warn("skipping anime row", "error", err)
	} else {
		s.addRowLocked(&Row{
			Name:  "anime",
			Title: "Anime",
			List:  pagedlist.New(animeSeed, itemKey, s.AnimePage),
		})
	}

	slog.Info("seeded home rows", "rows", len(s.rowOrder))
	return nil
}

func (s *Service) addRowLocked(r *Row) {
	s.rows[r.Name] = r
	s.rowOrder = append(s.rowOrder, r.Name)
}

// Rows returns snapshots of every seeded row in display order.
func (s *Service) Rows() []RowView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RowView, 0, len(s.rowOrder))
	for _, name := range s.rowOrder {
		out = append(out, s.rowView(s.rows[name]))
	}
	return out
}

// ErrUnknownRow marks a row name that was never seeded, as opposed to
// an upstream fetch failure.
var ErrUnknownRow = errors.New("unknown row")

// RowMore loads the next page of a named row and returns the fresh
// snapshot. Unknown rows return ErrUnknownRow; an exhausted row is a
// no-op.
func (s *Service) RowMore(ctx context.Context, name string) (RowView, error) {
	s.mu.RLock()
	row, ok := s.rows[name]
	s.mu.RUnlock()
	if !ok {
		return RowView{}, fmt.Errorf("%w: %q", ErrUnknownRow, name)
	}
	if err := row.List.LoadMore(ctx); err != nil {
		return RowView{}, fmt.Errorf("failed to extend row %q: %w", name, err)
	}
	return s.rowView(row), nil
}

func (s *Service) rowView(r *Row) RowView {
	return RowView{
		Name:    r.Name,
		Title:   r.Title,
		GenreID: r.GenreID,
		HasMore: r.List.HasMore(),
		Items:   r.List.Items(),
	}
}

// AnimePage fetches one page of the combined movie/TV anime list,
// sorted by rating. Both media types share the page so composite keys
// carry the dedup.
func (s *Service) AnimePage(ctx context.Context, page int) ([]models.Item, error) {
	filters := map[string]string{
		"with_genres":            "16",
		"with_original_language": "ja",
		"sort_by":                "popularity.desc",
	}
	movies, err := s.client.DiscoverMovies(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	shows, err := s.client.DiscoverTV(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	items := append(models.MovieItems(movies), models.TVItems(shows)...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].VoteAverage > items[j].VoteAverage
	})
	return items, nil
}

// HiddenGems fetches one page of highly rated low-profile titles.
func (s *Service) HiddenGems(ctx context.Context, page int) ([]models.Item, error) {
	movies, err := s.client.HiddenGems(ctx, page)
	if err != nil {
		return nil, err
	}
	return models.MovieItems(movies), nil
}

// DailyPicks returns the rotating randomized selection, reused within
// the rotation window and regenerated once it goes stale.
func (s *Service) DailyPicks(ctx context.Context) ([]models.Item, error) {
	return s.store.CachedPicks("daily", RotationWindow, func() ([]models.Item, error) {
		gems, err := s.HiddenGems(ctx, 1)
		if err != nil {
			return nil, err
		}
		rand.Shuffle(len(gems), func(i, j int) { gems[i], gems[j] = gems[j], gems[i] })
		if len(gems) > dailyPickSize {
			gems = gems[:dailyPickSize]
		}
		return gems, nil
	})
}
