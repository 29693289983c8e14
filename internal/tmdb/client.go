// Package tmdb is the typed client for the remote metadata API. Every
// list call has the shape (params, page) -> items so list controllers
// can treat all query shapes uniformly. Without an API key the client
// runs in degraded mode and serves schema-valid synthetic data instead
// of failing, keeping the rest of the system exercisable offline.
package tmdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"filmreel/internal/config"
	"filmreel/internal/models"
)

// Client is the metadata API client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	mock    *mockSource
}

// New creates a new metadata client. An empty or placeholder API key
// selects degraded mode.
func New(cfg config.TMDBConfig) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	if cfg.APIKey == "" || cfg.APIKey == "PLACEHOLDER_KEY" {
		slog.Warn("no TMDB API key configured, serving mock data")
		c.mock = newMockSource(time.Now().UnixNano())
	}
	return c
}

// Mock reports whether the client runs in degraded mode.
func (c *Client) Mock() bool {
	return c.mock != nil
}

// ---- Response envelopes ----

type pageOf[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

type genreList struct {
	Genres []models.Genre `json:"genres"`
}

type creditsOf struct {
	Cast []models.CastMember `json:"cast"`
}

// get performs one API request and decodes the response body into T.
func get[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (T, error) {
	var out T

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("language", "en-US")
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	reqURL := c.baseURL + endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return out, fmt.Errorf("failed to build request: %w", err)
	}

	slog.Debug("fetching metadata", "endpoint", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return out, fmt.Errorf("metadata API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return out, nil
}

func pageParam(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(page)}}
}

// ---- Movie queries ----

// Genres fetches the movie genre list.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	if c.mock != nil {
		return c.mock.movieGenres(), nil
	}
	data, err := get[genreList](ctx, c, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}
	return data.Genres, nil
}

// PopularMovies fetches one page of popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]models.Movie, error) {
	if c.mock != nil {
		return c.mock.movies(10), nil
	}
	data, err := get[pageOf[models.Movie]](ctx, c, "/movie/popular", pageParam(page))
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// MoviesByGenre fetches one page of a genre's most popular movies.
func (c *Client) MoviesByGenre(ctx context.Context, genreID, page int) ([]models.Movie, error) {
	return c.DiscoverMovies(ctx, map[string]string{
		"with_genres": strconv.Itoa(genreID),
		"sort_by":     "popularity.desc",
	}, page)
}

// MoviesByPerson fetches one page of a person's most popular movies.
func (c *Client) MoviesByPerson(ctx context.Context, personID, page int) ([]models.Movie, error) {
	return c.DiscoverMovies(ctx, map[string]string{
		"with_people": strconv.Itoa(personID),
		"sort_by":     "popularity.desc",
	}, page)
}

// HiddenGems fetches highly rated movies with modest vote counts.
func (c *Client) HiddenGems(ctx context.Context, page int) ([]models.Movie, error) {
	return c.DiscoverMovies(ctx, map[string]string{
		"sort_by":          "vote_average.desc",
		"vote_average.gte": "7",
		"vote_count.gte":   "50",
		"vote_count.lte":   "500",
	}, page)
}

// DiscoverMovies fetches one page for an arbitrary discovery filter map.
func (c *Client) DiscoverMovies(ctx context.Context, filters map[string]string, page int) ([]models.Movie, error) {
	if c.mock != nil {
		return c.mock.movies(10), nil
	}
	params := pageParam(page)
	for k, v := range filters {
		params.Set(k, v)
	}
	data, err := get[pageOf[models.Movie]](ctx, c, "/discover/movie", params)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// SearchMovies runs a free-text movie search.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) ([]models.Movie, error) {
	if c.mock != nil {
		return c.mock.movies(8), nil
	}
	params := pageParam(page)
	params.Set("query", query)
	data, err := get[pageOf[models.Movie]](ctx, c, "/search/movie", params)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// MovieDetails fetches detailed info for one movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (models.Movie, error) {
	if c.mock != nil {
		return c.mock.movieDetail(movieID), nil
	}
	return get[models.Movie](ctx, c, fmt.Sprintf("/movie/%d", movieID), nil)
}

// SimilarMovies fetches titles similar to the given movie.
func (c *Client) SimilarMovies(ctx context.Context, movieID int) ([]models.Movie, error) {
	if c.mock != nil {
		return c.mock.movies(6), nil
	}
	data, err := get[pageOf[models.Movie]](ctx, c, fmt.Sprintf("/movie/%d/similar", movieID), nil)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// MovieCredits fetches the cast for a movie, sorted by billing order.
func (c *Client) MovieCredits(ctx context.Context, movieID int) ([]models.CastMember, error) {
	if c.mock != nil {
		return c.mock.cast(8), nil
	}
	data, err := get[creditsOf](ctx, c, fmt.Sprintf("/movie/%d/credits", movieID), nil)
	if err != nil {
		return nil, err
	}
	cast := data.Cast
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	return cast, nil
}

// MovieReviews fetches one page of free-text reviews for a movie.
func (c *Client) MovieReviews(ctx context.Context, movieID, page int) ([]models.Review, error) {
	if c.mock != nil {
		return c.mock.reviews(3), nil
	}
	data, err := get[pageOf[models.Review]](ctx, c, fmt.Sprintf("/movie/%d/reviews", movieID), pageParam(page))
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// SearchPerson runs a free-text person search.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]models.Person, error) {
	if c.mock != nil {
		return c.mock.people(4), nil
	}
	data, err := get[pageOf[models.Person]](ctx, c, "/search/person", url.Values{"query": {query}})
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// ---- TV queries ----

// TVGenres fetches the TV genre list.
func (c *Client) TVGenres(ctx context.Context) ([]models.Genre, error) {
	if c.mock != nil {
		return c.mock.tvGenres(), nil
	}
	data, err := get[genreList](ctx, c, "/genre/tv/list", nil)
	if err != nil {
		return nil, err
	}
	return data.Genres, nil
}

// PopularTV fetches one page of popular TV shows.
func (c *Client) PopularTV(ctx context.Context, page int) ([]models.TVShow, error) {
	if c.mock != nil {
		return c.mock.tvShows(10), nil
	}
	data, err := get[pageOf[models.TVShow]](ctx, c, "/tv/popular", pageParam(page))
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// DiscoverTV fetches one page for an arbitrary TV discovery filter map.
func (c *Client) DiscoverTV(ctx context.Context, filters map[string]string, page int) ([]models.TVShow, error) {
	if c.mock != nil {
		return c.mock.tvShows(10), nil
	}
	params := pageParam(page)
	for k, v := range filters {
		params.Set(k, v)
	}
	data, err := get[pageOf[models.TVShow]](ctx, c, "/discover/tv", params)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// SearchTV runs a free-text TV search.
func (c *Client) SearchTV(ctx context.Context, query string, page int) ([]models.TVShow, error) {
	if c.mock != nil {
		return c.mock.tvShows(8), nil
	}
	params := pageParam(page)
	params.Set("query", query)
	data, err := get[pageOf[models.TVShow]](ctx, c, "/search/tv", params)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// TVDetails fetches detailed info for one show, including seasons.
func (c *Client) TVDetails(ctx context.Context, tvID int) (models.TVShow, error) {
	if c.mock != nil {
		return c.mock.tvDetail(tvID), nil
	}
	return get[models.TVShow](ctx, c, fmt.Sprintf("/tv/%d", tvID), nil)
}

// SeasonDetails fetches one season with its episode list.
func (c *Client) SeasonDetails(ctx context.Context, tvID, seasonNumber int) (models.Season, error) {
	if c.mock != nil {
		return c.mock.season(seasonNumber), nil
	}
	return get[models.Season](ctx, c, fmt.Sprintf("/tv/%d/season/%d", tvID, seasonNumber), nil)
}

// SimilarTV fetches shows similar to the given one.
func (c *Client) SimilarTV(ctx context.Context, tvID int) ([]models.TVShow, error) {
	if c.mock != nil {
		return c.mock.tvShows(6), nil
	}
	data, err := get[pageOf[models.TVShow]](ctx, c, fmt.Sprintf("/tv/%d/similar", tvID), nil)
	if err != nil {
		return nil, err
	}
	return data.Results, nil
}

// TVCredits fetches the cast for a show, sorted by billing order.
func (c *Client) TVCredits(ctx context.Context, tvID int) ([]models.CastMember, error) {
	if c.mock != nil {
		return c.mock.cast(8), nil
	}
	data, err := get[creditsOf](ctx, c, fmt.Sprintf("/tv/%d/credits", tvID), nil)
	if err != nil {
		return nil, err
	}
	cast := data.Cast
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	return cast, nil
}
