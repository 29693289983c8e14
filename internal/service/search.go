package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"filmreel/internal/models"
	"filmreel/internal/search"
)

// Search resolves the query under the category and runs the matching
// remote calls. A query that resolves to nothing (unknown actor, no
// genre match, no year) is a valid empty result, not an error.
func (s *Service) Search(ctx context.Context, query string, cat search.Category, page int) ([]models.Item, error) {
	filters := search.Resolve(query, cat, s.genres.All())

	switch cat {
	case search.ByActor:
		if filters.PersonQuery == "" {
			return []models.Item{}, nil
		}
		people, err := s.client.SearchPerson(ctx, filters.PersonQuery)
		if err != nil {
			return nil, fmt.Errorf("person search failed: %w", err)
		}
		if len(people) == 0 {
			return []models.Item{}, nil
		}
		movies, err := s.client.MoviesByPerson(ctx, people[0].ID, page)
		if err != nil {
			return nil, err
		}
		return models.MovieItems(movies), nil

	case search.ByGenre, search.ByMood:
		if len(filters.GenreIDs) == 0 {
			return []models.Item{}, nil
		}
		ids := make([]string, 0, len(filters.GenreIDs))
		for _, id := range filters.GenreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		movies, err := s.client.DiscoverMovies(ctx, map[string]string{
			"with_genres": strings.Join(ids, ","),
			"sort_by":     "popularity.desc",
		}, page)
		if err != nil {
			return nil, err
		}
		return models.MovieItems(movies), nil

	case search.ByYear:
		if filters.Year == "" {
			return []models.Item{}, nil
		}
		movies, err := s.client.DiscoverMovies(ctx, map[string]string{
			"primary_release_year": filters.Year,
			"sort_by":              "popularity.desc",
		}, page)
		if err != nil {
			return nil, err
		}
		return models.MovieItems(movies), nil

	default: // title: combined movie+TV text search
		if filters.Query == "" {
			return []models.Item{}, nil
		}
		movies, err := s.client.SearchMovies(ctx, filters.Query, page)
		if err != nil {
			return nil, err
		}
		shows, err := s.client.SearchTV(ctx, filters.Query, page)
		if err != nil {
			return nil, err
		}
		return append(models.MovieItems(movies), models.TVItems(shows)...), nil
	}
}
