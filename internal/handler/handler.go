package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"filmreel/internal/models"
	"filmreel/internal/notify"
	"filmreel/internal/player"
	"filmreel/internal/service"
)

// Handler handles HTTP requests for the filmreel service.
type Handler struct {
	svc    *service.Service
	notifs *notify.Center
	sink   *player.ProgressSink
}

// New creates a new Handler.
func New(svc *service.Service, notifs *notify.Center, sink *player.ProgressSink) *Handler {
	return &Handler{svc: svc, notifs: notifs, sink: sink}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "filmreel",
		"mock":    h.svc.Client().Mock(),
	})
}

// titleKey parses the :type/:id route segments into a composite key.
func titleKey(c fiber.Ctx) (models.Key, error) {
	mt := models.MediaType(c.Params("type"))
	if mt != models.MediaMovie && mt != models.MediaTV {
		return models.Key{}, fiber.NewError(fiber.StatusBadRequest, "invalid media type")
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return models.Key{}, fiber.NewError(fiber.StatusBadRequest, "invalid title ID")
	}
	return models.Key{Type: mt, ID: id}, nil
}
