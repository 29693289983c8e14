package models

import "fmt"

// MediaType tags an item as a movie or a TV show. Movies and shows
// share the TMDB numeric id space, so an id alone is never an identity.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Key is the composite identity of a title. All dedup, watchlist and
// watched-state logic keys on this, never on the bare numeric id.
type Key struct {
	Type MediaType `json:"media_type"`
	ID   int       `json:"id"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Type, k.ID)
}

// Movie is a movie as returned by the metadata API.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids"`
	Runtime      int     `json:"runtime,omitempty"`
}

// TVShow is a TV series as returned by the metadata API.
type TVShow struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	Overview         string   `json:"overview"`
	VoteAverage      float64  `json:"vote_average"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	NumberOfSeasons  int      `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int      `json:"number_of_episodes,omitempty"`
	Seasons          []Season `json:"seasons,omitempty"`
}

// Item is the tagged movie|tv variant used wherever both kinds appear in
// one list. Only the fields common to both shapes are carried.
type Item struct {
	MediaType    MediaType `json:"media_type"`
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	PosterPath   string    `json:"poster_path"`
	BackdropPath string    `json:"backdrop_path"`
	Overview     string    `json:"overview"`
	VoteAverage  float64   `json:"vote_average"`
	ReleaseDate  string    `json:"release_date"`
	GenreIDs     []int     `json:"genre_ids"`
}

// Key returns the composite identity of the item.
func (it Item) Key() Key {
	return Key{Type: it.MediaType, ID: it.ID}
}

// MovieItem converts a Movie into the tagged variant.
func MovieItem(m Movie) Item {
	return Item{
		MediaType:    MediaMovie,
		ID:           m.ID,
		Title:        m.Title,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Overview:     m.Overview,
		VoteAverage:  m.VoteAverage,
		ReleaseDate:  m.ReleaseDate,
		GenreIDs:     m.GenreIDs,
	}
}

// TVItem converts a TVShow into the tagged variant.
func TVItem(s TVShow) Item {
	return Item{
		MediaType:    MediaTV,
		ID:           s.ID,
		Title:        s.Name,
		PosterPath:   s.PosterPath,
		BackdropPath: s.BackdropPath,
		Overview:     s.Overview,
		VoteAverage:  s.VoteAverage,
		ReleaseDate:  s.FirstAirDate,
		GenreIDs:     s.GenreIDs,
	}
}

// MovieItems tags a whole page of movies.
func MovieItems(movies []Movie) []Item {
	items := make([]Item, 0, len(movies))
	for _, m := range movies {
		items = append(items, MovieItem(m))
	}
	return items
}

// TVItems tags a whole page of TV shows.
func TVItems(shows []TVShow) []Item {
	items := make([]Item, 0, len(shows))
	for _, s := range shows {
		items = append(items, TVItem(s))
	}
	return items
}

// Genre is a genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a person search result.
type Person struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

// CastMember is one credited cast entry.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Review is a free-text review of a title.
type Review struct {
	ID            string        `json:"id"`
	Author        string        `json:"author"`
	Content       string        `json:"content"`
	AuthorDetails ReviewDetails `json:"author_details"`
}

// ReviewDetails carries the reviewer's optional rating.
type ReviewDetails struct {
	Rating *float64 `json:"rating"`
}

// Season is one season of a TV show.
type Season struct {
	ID           int       `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	AirDate      string    `json:"air_date"`
	EpisodeCount int       `json:"episode_count"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// Episode is one episode of a season.
type Episode struct {
	ID            int     `json:"id"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     string  `json:"still_path"`
	AirDate       string  `json:"air_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
}
