package tmdb

import (
	"fmt"
	"math/rand"
	"sync"

	"filmreel/internal/models"
)

// mockSource generates schema-valid synthetic data for degraded mode.
// Ids are offset randomly per call so repeated pages don't collide,
// which keeps pagination and dedup paths honest without a network.
type mockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newMockSource(seed int64) *mockSource {
	return &mockSource{rng: rand.New(rand.NewSource(seed))}
}

func (m *mockSource) offset() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(1_000_000)
}

func (m *mockSource) movieGenres() []models.Genre {
	return []models.Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
		{ID: 18, Name: "Drama"},
		{ID: 878, Name: "Sci-Fi"},
	}
}

func (m *mockSource) tvGenres() []models.Genre {
	return []models.Genre{
		{ID: 10759, Name: "Action & Adventure"},
		{ID: 35, Name: "Comedy"},
		{ID: 18, Name: "Drama"},
		{ID: 10765, Name: "Sci-Fi & Fantasy"},
	}
}

func (m *mockSource) movies(n int) []models.Movie {
	base := m.offset()
	out := make([]models.Movie, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Movie{
			ID:          base + i,
			Title:       fmt.Sprintf("Mock Movie %d", base+i),
			Overview:    "This is a mock overview because no TMDB API key is provided.",
			VoteAverage: 8.5,
			ReleaseDate: "2026-01-01",
			GenreIDs:    []int{28, 878},
		})
	}
	return out
}

func (m *mockSource) movieDetail(id int) models.Movie {
	return models.Movie{
		ID:          id,
		Title:       fmt.Sprintf("Mock Movie %d", id),
		Overview:    "This is a mock overview because no TMDB API key is provided.",
		VoteAverage: 8.5,
		ReleaseDate: "2026-01-01",
		GenreIDs:    []int{28, 878},
		Runtime:     120,
	}
}

func (m *mockSource) tvShows(n int) []models.TVShow {
	base := m.offset()
	out := make([]models.TVShow, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.TVShow{
			ID:              base + i,
			Name:            fmt.Sprintf("Mock TV Show %d", base+i),
			Overview:        "This is a mock TV show because no TMDB API key is provided.",
			VoteAverage:     8.0,
			FirstAirDate:    "2026-01-01",
			GenreIDs:        []int{18, 10765},
			NumberOfSeasons: 3,
		})
	}
	return out
}

func (m *mockSource) tvDetail(id int) models.TVShow {
	return models.TVShow{
		ID:              id,
		Name:            fmt.Sprintf("Mock TV Show %d", id),
		Overview:        "This is a mock TV show because no TMDB API key is provided.",
		VoteAverage:     8.0,
		FirstAirDate:    "2026-01-01",
		GenreIDs:        []int{18, 10765},
		NumberOfSeasons: 2,
		Seasons: []models.Season{
			{ID: 1, SeasonNumber: 1, Name: "Season 1", AirDate: "2026-01-01", EpisodeCount: 10},
			{ID: 2, SeasonNumber: 2, Name: "Season 2", AirDate: "2026-06-01", EpisodeCount: 8},
		},
	}
}

func (m *mockSource) season(n int) models.Season {
	episodes := make([]models.Episode, 0, 8)
	for i := 1; i <= 8; i++ {
		episodes = append(episodes, models.Episode{
			ID:            i,
			EpisodeNumber: i,
			SeasonNumber:  n,
			Name:          fmt.Sprintf("Episode %d", i),
			Overview:      fmt.Sprintf("Mock episode %d overview.", i),
			AirDate:       "2026-01-01",
			Runtime:       45,
			VoteAverage:   7.5,
		})
	}
	return models.Season{
		ID:           n,
		SeasonNumber: n,
		Name:         fmt.Sprintf("Season %d", n),
		Overview:     "Mock season overview.",
		AirDate:      "2026-01-01",
		EpisodeCount: len(episodes),
		Episodes:     episodes,
	}
}

func (m *mockSource) people(n int) []models.Person {
	base := m.offset()
	out := make([]models.Person, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Person{
			ID:                 base + i,
			Name:               fmt.Sprintf("Mock Person %d", base+i),
			KnownForDepartment: "Acting",
		})
	}
	return out
}

func (m *mockSource) cast(n int) []models.CastMember {
	base := m.offset()
	out := make([]models.CastMember, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.CastMember{
			ID:        base + i,
			Name:      fmt.Sprintf("Mock Actor %d", base+i),
			Character: fmt.Sprintf("Character %d", i+1),
			Order:     i,
		})
	}
	return out
}

func (m *mockSource) reviews(n int) []models.Review {
	base := m.offset()
	out := make([]models.Review, 0, n)
	for i := 0; i < n; i++ {
		rating := 7.0
		out = append(out, models.Review{
			ID:            fmt.Sprintf("mock-review-%d", base+i),
			Author:        fmt.Sprintf("Mock Reviewer %d", i+1),
			Content:       "A thrilling, funny and heartfelt mock review.",
			AuthorDetails: models.ReviewDetails{Rating: &rating},
		})
	}
	return out
}
