// Package mood scores multiple-choice survey answers against weighted
// genre tables and picks the single best-matching genre, optionally
// refining the candidate titles with a review-keyword re-rank.
package mood

import (
	"context"
	"fmt"
	"sort"
	"time"

	"filmreel/internal/genres"
	"filmreel/internal/models"
	"filmreel/internal/storage"
	"filmreel/internal/tmdb"
)

// FallbackGenre wins when no answer contributed any score.
const FallbackGenre = 28 // Action

// Engine accumulates answer weights across the survey.
type Engine struct {
	scores map[int]int
}

// NewEngine creates an engine with an empty score table.
func NewEngine() *Engine {
	return &Engine{scores: make(map[int]int)}
}

// Select accumulates one chosen option's weights: additive, no decay.
func (e *Engine) Select(weights map[int]int) {
	for id, weight := range weights {
		e.scores[id] += weight
	}
}

// Scores returns a copy of the accumulated score table.
func (e *Engine) Scores() map[int]int {
	out := make(map[int]int, len(e.scores))
	for id, score := range e.scores {
		out[id] = score
	}
	return out
}

// Winner returns the highest-scoring genre. Candidates are walked in
// ascending genre-id order, so a tie goes to the smallest id.
func (e *Engine) Winner() int {
	ids := make([]int, 0, len(e.scores))
	for id := range e.scores {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	winner := FallbackGenre
	best := -1
	for _, id := range ids {
		if e.scores[id] > best {
			best = e.scores[id]
			winner = id
		}
	}
	return winner
}

// Result is a completed resolution.
type Result struct {
	GenreID   int           `json:"genre_id"`
	GenreName string        `json:"genre_name"`
	MoodLabel string        `json:"mood_label"`
	Items     []models.Item `json:"items"`
}

// Resolve finishes the base pass: picks the winning genre, fetches its
// top titles, and appends one entry to the persisted mood history.
func (e *Engine) Resolve(ctx context.Context, client *tmdb.Client, store *storage.Store, gm *genres.Map) (Result, error) {
	genreID := e.Winner()
	name := gm.Name(genreID)

	movies, err := client.MoviesByGenre(ctx, genreID, 1)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch mood titles: %w", err)
	}

	label := "Feeling " + name
	store.AddMoodResult(models.MoodResult{
		Date:               time.Now(),
		RecommendedGenreID: genreID,
		MoodLabel:          label,
	})

	return Result{
		GenreID:   genreID,
		GenreName: name,
		MoodLabel: label,
		Items:     models.MovieItems(movies),
	}, nil
}
