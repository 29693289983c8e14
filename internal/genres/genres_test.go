package genres

import (
	"testing"

	"filmreel/internal/models"
)

func TestNameFallsBack(t *testing.T) {
	m := NewMap()
	if got := m.Name(28); got != "Action" {
		t.Errorf("expected Action, got %q", got)
	}
	if got := m.Name(999999); got != "Film" {
		t.Errorf("expected fallback Film, got %q", got)
	}
}

func TestSeedEnriches(t *testing.T) {
	m := NewMap()
	m.Seed([]models.Genre{{ID: 10765, Name: "Sci-Fi & Fantasy"}})
	if got := m.Name(10765); got != "Sci-Fi & Fantasy" {
		t.Errorf("expected seeded name, got %q", got)
	}
}
