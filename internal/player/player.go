// Package player integrates the embedded third-party video players.
// Playback is driven entirely through a parameterized embed URL; the
// only inbound surface is a stream of tagged playback events, parsed
// defensively because the sender is untrusted.
package player

import (
	"fmt"
	"net/url"

	json "github.com/goccy/go-json"

	"filmreel/internal/models"
	"filmreel/internal/storage"
)

// Provider selects which embed player serves the stream.
type Provider string

const (
	VidKing    Provider = "vidking"
	VidSrc     Provider = "vidsrc"
	SuperEmbed Provider = "superembed"
)

// EmbedURL builds the player URL for a title. Season and episode are
// ignored for movies.
func EmbedURL(p Provider, key models.Key, season, episode int) string {
	switch p {
	case VidKing:
		if key.Type == models.MediaTV {
			params := url.Values{"color": {"7f13ec"}, "autoPlay": {"true"}}
			return fmt.Sprintf("https://vidking.net/embed/tv/%d/%d/%d?%s", key.ID, season, episode, params.Encode())
		}
		return fmt.Sprintf("https://vidking.net/embed/movie/%d", key.ID)
	case VidSrc:
		if key.Type == models.MediaTV {
			return fmt.Sprintf("https://vidsrc.me/embed/tv?tmdb=%d&season=%d&episode=%d", key.ID, season, episode)
		}
		return fmt.Sprintf("https://vidsrc.me/embed/movie?tmdb=%d", key.ID)
	case SuperEmbed:
		if key.Type == models.MediaTV {
			return fmt.Sprintf("https://multiembed.mov/directstream.php?video_id=%d&tmdb=1&s=%d&e=%d", key.ID, season, episode)
		}
		return fmt.Sprintf("https://multiembed.mov/directstream.php?video_id=%d&tmdb=1", key.ID)
	}
	return "about:blank"
}

// EventType tags an inbound playback event.
type EventType string

const (
	EventPlay       EventType = "play"
	EventPause      EventType = "pause"
	EventSeeked     EventType = "seeked"
	EventTimeUpdate EventType = "timeupdate"
	EventEnded      EventType = "ended"
)

// Event is one playback-progress message from the embedded player.
type Event struct {
	Type        EventType `json:"event"`
	CurrentTime float64   `json:"currentTime"`
	Duration    float64   `json:"duration"`
}

var knownEvents = map[EventType]struct{}{
	EventPlay:       {},
	EventPause:      {},
	EventSeeked:     {},
	EventTimeUpdate: {},
	EventEnded:      {},
}

// ParseEvent decodes an inbound message. Malformed payloads and
// unknown event tags are ignored, never surfaced as errors.
func ParseEvent(raw []byte) (Event, bool) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return Event{}, false
	}
	if _, known := knownEvents[ev.Type]; !known {
		return Event{}, false
	}
	if ev.CurrentTime < 0 || ev.Duration < 0 {
		return Event{}, false
	}
	return ev, true
}

// ProgressSink persists resume positions from playback events.
type ProgressSink struct {
	store *storage.Store
}

// NewProgressSink creates a sink over the store.
func NewProgressSink(store *storage.Store) *ProgressSink {
	return &ProgressSink{store: store}
}

// Apply folds one event into persisted state: progress events upsert
// the elapsed position; ended marks the title watched and drops the
// resume position.
func (s *ProgressSink) Apply(key models.Key, ev Event) {
	switch ev.Type {
	case EventTimeUpdate, EventPause, EventSeeked:
		s.store.SaveProgress(key, ev.CurrentTime)
	case EventEnded:
		s.store.MarkWatched(key)
		s.store.RemoveProgress(key)
	}
}
