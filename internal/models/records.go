package models

import "time"

// UserProfile is the single locally persisted profile. A zero-value
// profile is the lazy default returned before the user first saves one.
type UserProfile struct {
	DisplayName     string `json:"display_name"`
	AvatarBase64    string `json:"avatar_base64,omitempty"`
	FavoriteGenreID int    `json:"favorite_genre_id,omitempty"`
}

// MoodResult is one completed mood-survey outcome.
type MoodResult struct {
	Date               time.Time `json:"date"`
	RecommendedGenreID int       `json:"recommended_genre_id"`
	MoodLabel          string    `json:"mood_label"`
}

// WatchlistItem is a saved title. Uniqueness is by Key, not bare id.
type WatchlistItem struct {
	Key        Key       `json:"key"`
	Title      string    `json:"title"`
	PosterPath string    `json:"poster_path,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// Notification is one entry shown in the notification center. The
// canonical set lives in a static registry; only Read state and
// cleared-ids are persisted locally.
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
