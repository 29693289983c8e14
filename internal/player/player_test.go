package player

import (
	"strings"
	"testing"

	"filmreel/internal/models"
	"filmreel/internal/storage"
	"filmreel/internal/syncbus"
)

func TestParseEvent(t *testing.T) {
	ev, ok := ParseEvent([]byte(`{"event":"timeupdate","currentTime":421.5,"duration":7260}`))
	if !ok {
		t.Fatal("expected valid event")
	}
	if ev.Type != EventTimeUpdate || ev.CurrentTime != 421.5 || ev.Duration != 7260 {
		t.Errorf("decode mismatch: %+v", ev)
	}
}

func TestParseEventRejectsMalformed(t *testing.T) {
	cases := []string{
		`not json at all`,
		`{"event":"selfdestruct","currentTime":1}`,
		`{"event":"timeupdate","currentTime":-5}`,
		`{}`,
		``,
	}
	for _, raw := range cases {
		if _, ok := ParseEvent([]byte(raw)); ok {
			t.Errorf("expected %q rejected", raw)
		}
	}
}

func TestEmbedURLs(t *testing.T) {
	movie := models.Key{Type: models.MediaMovie, ID: 603}
	show := models.Key{Type: models.MediaTV, ID: 1399}

	if got := EmbedURL(VidKing, movie, 0, 0); got != "https://vidking.net/embed/movie/603" {
		t.Errorf("vidking movie: %s", got)
	}
	tv := EmbedURL(VidKing, show, 2, 5)
	if !strings.HasPrefix(tv, "https://vidking.net/embed/tv/1399/2/5?") {
		t.Errorf("vidking tv: %s", tv)
	}
	if got := EmbedURL(VidSrc, show, 1, 1); got != "https://vidsrc.me/embed/tv?tmdb=1399&season=1&episode=1" {
		t.Errorf("vidsrc tv: %s", got)
	}
	if !strings.Contains(EmbedURL(SuperEmbed, show, 1, 2), "multiembed.mov") {
		t.Errorf("superembed tv: %s", EmbedURL(SuperEmbed, show, 1, 2))
	}
	if got := EmbedURL(Provider("unknown"), movie, 0, 0); got != "about:blank" {
		t.Errorf("unknown provider: %s", got)
	}
}

func TestProgressSink(t *testing.T) {
	store := storage.New(storage.NewMemoryBackend(), syncbus.New())
	sink := NewProgressSink(store)
	key := models.Key{Type: models.MediaMovie, ID: 603}

	sink.Apply(key, Event{Type: EventTimeUpdate, CurrentTime: 300, Duration: 7260})
	if got := store.ProgressFor(key); got != 300 {
		t.Errorf("expected progress 300, got %v", got)
	}

	sink.Apply(key, Event{Type: EventEnded, CurrentTime: 7260, Duration: 7260})
	if !store.IsWatched(key) {
		t.Error("ended event must mark the title watched")
	}
	if got := store.ProgressFor(key); got != 0 {
		t.Errorf("ended event must drop the resume position, got %v", got)
	}
}
