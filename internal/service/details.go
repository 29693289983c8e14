package service

import (
	"context"
	"fmt"

	"filmreel/internal/models"
	"filmreel/internal/mood"
)

// MovieDetail bundles everything the movie view needs in one load.
type MovieDetail struct {
	Movie   models.Movie        `json:"movie"`
	Cast    []models.CastMember `json:"cast"`
	Similar []models.Item       `json:"similar"`
}

// TVDetail bundles everything the TV view needs in one load.
type TVDetail struct {
	Show    models.TVShow       `json:"show"`
	Cast    []models.CastMember `json:"cast"`
	Similar []models.Item       `json:"similar"`
}

// Movie loads the movie detail bundle. The detail fetch is
// load-bearing; cast and similar failures degrade to empty sections.
func (s *Service) Movie(ctx context.Context, id int) (MovieDetail, error) {
	movie, err := s.client.MovieDetails(ctx, id)
	if err != nil {
		return MovieDetail{}, fmt.Errorf("movie not found: %w", err)
	}
	detail := MovieDetail{Movie: movie}
	if cast, err := s.client.MovieCredits(ctx, id); err == nil {
		detail.Cast = cast
	}
	if similar, err := s.client.SimilarMovies(ctx, id); err == nil {
		detail.Similar = models.MovieItems(similar)
	}
	return detail, nil
}

// TV loads the TV detail bundle.
func (s *Service) TV(ctx context.Context, id int) (TVDetail, error) {
	show, err := s.client.TVDetails(ctx, id)
	if err != nil {
		return TVDetail{}, fmt.Errorf("tv show not found: %w", err)
	}
	detail := TVDetail{Show: show}
	if cast, err := s.client.TVCredits(ctx, id); err == nil {
		detail.Cast = cast
	}
	if similar, err := s.client.SimilarTV(ctx, id); err == nil {
		detail.Similar = models.TVItems(similar)
	}
	return detail, nil
}

// Season loads one season with episodes.
func (s *Service) Season(ctx context.Context, tvID, seasonNumber int) (models.Season, error) {
	return s.client.SeasonDetails(ctx, tvID, seasonNumber)
}

// ResolveSurvey scores the submitted answers, resolves the winning
// genre, persists the history entry, and applies the optional
// review-keyword refinement when keywords were collected.
func (s *Service) ResolveSurvey(ctx context.Context, answers []map[int]int, keywords []string) (mood.Result, error) {
	engine := mood.NewEngine()
	for _, weights := range answers {
		engine.Select(weights)
	}

	result, err := engine.Resolve(ctx, s.client, s.store, s.genres)
	if err != nil {
		return mood.Result{}, err
	}

	if len(keywords) > 0 {
		result.Items = mood.Rerank(ctx, func(ctx context.Context, key models.Key) ([]models.Review, error) {
			return s.client.MovieReviews(ctx, key.ID, 1)
		}, result.Items, keywords, 10)
	}
	return result, nil
}
