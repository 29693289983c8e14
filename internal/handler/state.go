package handler

import (
	"github.com/gofiber/fiber/v3"

	"filmreel/internal/models"
	"filmreel/internal/player"
)

// ---- Profile ----

// GetProfile returns the user profile.
func (h *Handler) GetProfile(c fiber.Ctx) error {
	return c.JSON(h.svc.Store().Profile())
}

// SaveProfile replaces the profile wholesale.
func (h *Handler) SaveProfile(c fiber.Ctx) error {
	var profile models.UserProfile
	if err := c.Bind().JSON(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid profile payload"})
	}
	h.svc.Store().SaveProfile(profile)
	return c.JSON(h.svc.Store().Profile())
}

// ResetProfile restores the default profile.
func (h *Handler) ResetProfile(c fiber.Ctx) error {
	h.svc.Store().ResetProfile()
	return c.JSON(h.svc.Store().Profile())
}

// ---- Mood history ----

// MoodHistory returns past survey results, newest first.
func (h *Handler) MoodHistory(c fiber.Ctx) error {
	return c.JSON(h.svc.Store().MoodHistory())
}

// ---- Watchlist ----

// Watchlist returns saved titles, newest first.
func (h *Handler) Watchlist(c fiber.Ctx) error {
	return c.JSON(h.svc.Store().Watchlist())
}

// AddToWatchlist saves a title; duplicates are a no-op.
func (h *Handler) AddToWatchlist(c fiber.Ctx) error {
	var item models.WatchlistItem
	if err := c.Bind().JSON(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid watchlist payload"})
	}
	if item.Key.Type != models.MediaMovie && item.Key.Type != models.MediaTV {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid media type"})
	}
	h.svc.Store().AddToWatchlist(item)
	return c.JSON(h.svc.Store().Watchlist())
}

// RemoveFromWatchlist drops a title from the watchlist.
func (h *Handler) RemoveFromWatchlist(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	h.svc.Store().RemoveFromWatchlist(key)
	return c.JSON(h.svc.Store().Watchlist())
}

// ---- Watched set ----

// Watched returns watched title keys, newest first.
func (h *Handler) Watched(c fiber.Ctx) error {
	return c.JSON(h.svc.Store().WatchedKeys())
}

// MarkWatched records a title as watched.
func (h *Handler) MarkWatched(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	h.svc.Store().MarkWatched(key)
	return c.JSON(h.svc.Store().WatchedKeys())
}

// UnmarkWatched removes a title from the watched set.
func (h *Handler) UnmarkWatched(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	h.svc.Store().UnmarkWatched(key)
	return c.JSON(h.svc.Store().WatchedKeys())
}

// ---- Watch progress ----

// Progress returns resume positions per title key.
func (h *Handler) Progress(c fiber.Ctx) error {
	return c.JSON(h.svc.Store().Progress())
}

type progressRequest struct {
	Seconds float64 `json:"seconds"`
}

// SaveProgress upserts a resume position.
func (h *Handler) SaveProgress(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	var req progressRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid progress payload"})
	}
	h.svc.Store().SaveProgress(key, req.Seconds)
	return c.JSON(h.svc.Store().Progress())
}

// RemoveProgress drops a resume position.
func (h *Handler) RemoveProgress(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	h.svc.Store().RemoveProgress(key)
	return c.JSON(h.svc.Store().Progress())
}

// ---- Notifications ----

// Notifications returns live notifications newest first.
func (h *Handler) Notifications(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notifications": h.notifs.List(),
		"unread":        h.notifs.UnreadCount(),
	})
}

// MarkNotificationsRead flags every live notification as read.
func (h *Handler) MarkNotificationsRead(c fiber.Ctx) error {
	h.notifs.MarkAllRead()
	return c.JSON(h.notifs.List())
}

// ClearNotifications dismisses every live notification permanently.
func (h *Handler) ClearNotifications(c fiber.Ctx) error {
	h.notifs.ClearAll()
	return c.JSON(h.notifs.List())
}

// ---- Player ----

// EmbedURL builds the player URL for a title.
func (h *Handler) EmbedURL(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	provider := player.Provider(c.Query("provider", string(player.VidKing)))
	season := fiber.Query(c, "season", 1)
	episode := fiber.Query(c, "episode", 1)
	return c.JSON(fiber.Map{
		"url": player.EmbedURL(provider, key, season, episode),
	})
}

// PlayerEvent ingests one playback event from the embedded player.
// Malformed messages are acknowledged and ignored.
func (h *Handler) PlayerEvent(c fiber.Ctx) error {
	key, err := titleKey(c)
	if err != nil {
		return err
	}
	if ev, ok := player.ParseEvent(c.Body()); ok {
		h.sink.Apply(key, ev)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
