package mood

import (
	"context"
	"errors"
	"testing"

	"filmreel/internal/models"
)

func TestScoresAccumulateAdditively(t *testing.T) {
	e := NewEngine()
	e.Select(map[int]int{28: 3, 878: 2})
	e.Select(map[int]int{35: 4})
	e.Select(map[int]int{18: 4, 10749: 2})

	want := map[int]int{28: 3, 878: 2, 35: 4, 18: 4, 10749: 2}
	got := e.Scores()
	if len(got) != len(want) {
		t.Fatalf("expected %d scored genres, got %d", len(want), len(got))
	}
	for id, score := range want {
		if got[id] != score {
			t.Errorf("genre %d: expected score %d, got %d", id, score, got[id])
		}
	}

	// 35 and 18 tie at 4; the smaller genre id takes the tie.
	if e.Winner() != 18 {
		t.Errorf("expected genre 18 to win the tie, got %d", e.Winner())
	}
}

func TestLaterHigherScoreWins(t *testing.T) {
	e := NewEngine()
	e.Select(map[int]int{28: 3})
	e.Select(map[int]int{18: 4, 10749: 2})

	if e.Winner() != 18 {
		t.Errorf("expected genre 18 with score 4 to win, got %d", e.Winner())
	}
}

func TestTieGoesToSmallestGenreID(t *testing.T) {
	e := NewEngine()
	e.Select(map[int]int{27: 5})
	e.Select(map[int]int{878: 5})
	if e.Winner() != 27 {
		t.Errorf("tied scores must resolve to the smallest id, got %d", e.Winner())
	}

	// Order of answers must not matter for the tie.
	e = NewEngine()
	e.Select(map[int]int{878: 5})
	e.Select(map[int]int{27: 5})
	if e.Winner() != 27 {
		t.Errorf("tied scores must resolve to the smallest id, got %d", e.Winner())
	}
}

func TestEmptyScoresFallBack(t *testing.T) {
	e := NewEngine()
	if e.Winner() != FallbackGenre {
		t.Errorf("expected fallback genre %d, got %d", FallbackGenre, e.Winner())
	}
}

func items(ids ...int) []models.Item {
	out := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Item{MediaType: models.MediaMovie, ID: id})
	}
	return out
}

func TestRerankSortsPrefixByKeywordMatches(t *testing.T) {
	reviews := map[int]string{
		1: "a slow film",
		2: "gripping and clever, a real twist",
		3: "clever enough",
	}
	fetch := func(_ context.Context, key models.Key) ([]models.Review, error) {
		return []models.Review{{Content: reviews[key.ID]}}, nil
	}

	ranked := Rerank(context.Background(), fetch, items(1, 2, 3, 4), []string{"gripping", "clever", "twist"}, 3)

	wantOrder := []int{2, 3, 1, 4} // 2 scores 3, 3 scores 1, 1 scores 0, 4 untouched
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, ranked[i].ID)
		}
	}
}

func TestRerankIsStableForEqualScores(t *testing.T) {
	fetch := func(_ context.Context, key models.Key) ([]models.Review, error) {
		return []models.Review{{Content: "nothing matches here"}}, nil
	}

	ranked := Rerank(context.Background(), fetch, items(5, 6, 7), []string{"gripping"}, 3)

	for i, id := range []int{5, 6, 7} {
		if ranked[i].ID != id {
			t.Errorf("equal scores must keep original order, position %d got %d", i, ranked[i].ID)
		}
	}
}

func TestRerankSurvivesFetchFailure(t *testing.T) {
	fetch := func(_ context.Context, key models.Key) ([]models.Review, error) {
		if key.ID == 1 {
			return nil, errors.New("review fetch failed")
		}
		return []models.Review{{Content: "a gripping ride"}}, nil
	}

	ranked := Rerank(context.Background(), fetch, items(1, 2), []string{"gripping"}, 2)

	if len(ranked) != 2 {
		t.Fatalf("a single failed candidate must not abort the pass, got %d items", len(ranked))
	}
	// Item 1 scored zero, item 2 scored one: 2 ranks first.
	if ranked[0].ID != 2 || ranked[1].ID != 1 {
		t.Errorf("expected order [2 1], got [%d %d]", ranked[0].ID, ranked[1].ID)
	}
}

func TestRerankKeywordMatchIsCaseInsensitive(t *testing.T) {
	fetch := func(_ context.Context, key models.Key) ([]models.Review, error) {
		if key.ID == 2 {
			return []models.Review{{Content: "GRIPPING stuff"}}, nil
		}
		return []models.Review{{Content: "plain"}}, nil
	}

	ranked := Rerank(context.Background(), fetch, items(1, 2), []string{"Gripping"}, 2)
	if ranked[0].ID != 2 {
		t.Errorf("expected case-insensitive match to rank id 2 first, got %d", ranked[0].ID)
	}
}
