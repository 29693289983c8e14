package service

import (
	"context"
	"errors"
	"testing"

	"filmreel/internal/config"
	"filmreel/internal/genres"
	"filmreel/internal/search"
	"filmreel/internal/storage"
	"filmreel/internal/syncbus"
	"filmreel/internal/tmdb"
)

// newTestService runs against the client's degraded mode so no network
// is involved.
func newTestService() *Service {
	client := tmdb.New(config.TMDBConfig{APIKey: ""})
	store := storage.New(storage.NewMemoryBackend(), syncbus.New())
	return New(client, store, genres.NewMap())
}

func TestInitRowsSeedsControllers(t *testing.T) {
	svc := newTestService()
	if err := svc.InitRows(context.Background()); err != nil {
		t.Fatal(err)
	}

	rows := svc.Rows()
	if len(rows) < 2 {
		t.Fatalf("expected trending plus genre rows, got %d", len(rows))
	}
	if rows[0].Name != "trending" {
		t.Errorf("expected trending row first, got %q", rows[0].Name)
	}
	for _, row := range rows {
		if len(row.Items) == 0 {
			t.Errorf("row %q seeded empty", row.Name)
		}
		if !row.HasMore {
			t.Errorf("row %q should start with more pages available", row.Name)
		}
	}
}

func TestRowMoreAppendsWithoutDuplicates(t *testing.T) {
	svc := newTestService()
	if err := svc.InitRows(context.Background()); err != nil {
		t.Fatal(err)
	}

	before := len(svc.Rows()[0].Items)
	view, err := svc.RowMore(context.Background(), "trending")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Items) <= before {
		t.Errorf("expected more items after RowMore, had %d now %d", before, len(view.Items))
	}

	seen := make(map[string]bool)
	for _, item := range view.Items {
		k := item.Key().String()
		if seen[k] {
			t.Errorf("duplicate key %s after RowMore", k)
		}
		seen[k] = true
	}

	if _, err := svc.RowMore(context.Background(), "no-such-row"); !errors.Is(err, ErrUnknownRow) {
		t.Errorf("expected ErrUnknownRow for an unknown row, got %v", err)
	}
}

func TestAnimePageMixesMediaTypes(t *testing.T) {
	svc := newTestService()
	items, err := svc.AnimePage(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	var movies, shows int
	for _, it := range items {
		switch it.MediaType {
		case "movie":
			movies++
		case "tv":
			shows++
		default:
			t.Errorf("untagged item: %+v", it)
		}
	}
	if movies == 0 || shows == 0 {
		t.Errorf("expected both media types, got %d movies and %d shows", movies, shows)
	}
	for i := 1; i < len(items); i++ {
		if items[i].VoteAverage > items[i-1].VoteAverage {
			t.Fatal("anime page must be sorted by rating descending")
		}
	}
}

func TestSearchActorMissIsEmptyNotError(t *testing.T) {
	svc := newTestService()
	items, err := svc.Search(context.Background(), "   ", search.ByActor, 1)
	if err != nil {
		t.Fatalf("an actor miss is a valid empty result, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestSearchGenreMissIsEmptyNotError(t *testing.T) {
	svc := newTestService()
	items, err := svc.Search(context.Background(), "zzzzqqq", search.ByGenre, 1)
	if err != nil {
		t.Fatalf("a genre miss is a valid empty result, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestSearchTitleMergesMoviesAndTV(t *testing.T) {
	svc := newTestService()
	items, err := svc.Search(context.Background(), "matrix", search.ByTitle, 1)
	if err != nil {
		t.Fatal(err)
	}
	var movies, shows int
	for _, it := range items {
		switch it.MediaType {
		case "movie":
			movies++
		case "tv":
			shows++
		}
	}
	if movies == 0 || shows == 0 {
		t.Errorf("title search must combine movie and TV results, got %d/%d", movies, shows)
	}
}

func TestResolveSurveyPersistsHistory(t *testing.T) {
	svc := newTestService()

	result, err := svc.ResolveSurvey(context.Background(), []map[int]int{
		{28: 3, 878: 2},
		{18: 4, 10749: 2},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.GenreID != 18 {
		t.Errorf("expected genre 18 to win, got %d", result.GenreID)
	}
	if result.GenreName != "Drama" {
		t.Errorf("expected Drama, got %q", result.GenreName)
	}
	if len(result.Items) == 0 {
		t.Error("expected recommended titles")
	}

	history := svc.Store().MoodHistory()
	if len(history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(history))
	}
	if history[0].RecommendedGenreID != 18 || history[0].MoodLabel != "Feeling Drama" {
		t.Errorf("unexpected history entry: %+v", history[0])
	}
}

func TestDailyPicksReusedWithinWindow(t *testing.T) {
	svc := newTestService()

	first, err := svc.DailyPicks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.DailyPicks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected a stable cached selection, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("selection must be reused within the rotation window")
		}
	}
}
