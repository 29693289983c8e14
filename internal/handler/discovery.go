package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"filmreel/internal/mood"
	"filmreel/internal/search"
	"filmreel/internal/service"
)

// ListRows returns every seeded home row.
func (h *Handler) ListRows(c fiber.Ctx) error {
	return c.JSON(h.svc.Rows())
}

// RowMore loads the next page of one row and returns its snapshot.
func (h *Handler) RowMore(c fiber.Ctx) error {
	name := c.Params("name")
	view, err := h.svc.RowMore(c.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRow) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "unknown row"})
		}
		slog.Error("failed to extend row", "row", name, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to load more results",
		})
	}
	return c.JSON(view)
}

// DailyPicks returns the rotating pick selection.
func (h *Handler) DailyPicks(c fiber.Ctx) error {
	items, err := h.svc.DailyPicks(c.Context())
	if err != nil {
		slog.Error("failed to load daily picks", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to load daily picks",
		})
	}
	return c.JSON(items)
}

// HiddenGems returns one page of highly rated low-profile titles.
func (h *Handler) HiddenGems(c fiber.Ctx) error {
	page := fiber.Query(c, "page", 1)
	items, err := h.svc.HiddenGems(c.Context(), page)
	if err != nil {
		slog.Error("failed to load hidden gems", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to load hidden gems",
		})
	}
	return c.JSON(items)
}

// Search resolves a free-text query under a category and returns the
// matching page of titles.
func (h *Handler) Search(c fiber.Ctx) error {
	query := c.Query("q")
	cat := search.Category(c.Query("category", string(search.ByTitle)))
	page := fiber.Query(c, "page", 1)

	items, err := h.svc.Search(c.Context(), query, cat, page)
	if err != nil {
		slog.Error("search failed", "query", query, "category", cat, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "search failed",
		})
	}
	return c.JSON(items)
}

// MovieDetail returns the movie view bundle.
func (h *Handler) MovieDetail(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}
	detail, err := h.svc.Movie(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "movie not found"})
	}
	return c.JSON(detail)
}

// TVDetail returns the TV view bundle.
func (h *Handler) TVDetail(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid show ID"})
	}
	detail, err := h.svc.TV(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "show not found"})
	}
	return c.JSON(detail)
}

// SeasonDetail returns one season with its episodes.
func (h *Handler) SeasonDetail(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid show ID"})
	}
	n, err := strconv.Atoi(c.Params("season"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid season number"})
	}
	season, err := h.svc.Season(c.Context(), id, n)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "season not found"})
	}
	return c.JSON(season)
}

// MoodQuestions returns the survey definition.
func (h *Handler) MoodQuestions(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": mood.Questions,
		"extended":  mood.ExtendedQuestions,
	})
}

// surveyRequest carries chosen option indexes: one per base question,
// and optionally one per extended question.
type surveyRequest struct {
	Answers  []int `json:"answers"`
	Extended []int `json:"extended"`
}

// ResolveSurvey scores submitted answers and returns the mood result.
func (h *Handler) ResolveSurvey(c fiber.Ctx) error {
	var req surveyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid survey payload"})
	}
	if len(req.Answers) != len(mood.Questions) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "answer count mismatch"})
	}

	answers := make([]map[int]int, 0, len(req.Answers))
	for i, choice := range req.Answers {
		opts := mood.Questions[i].Options
		if choice < 0 || choice >= len(opts) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "answer out of range"})
		}
		answers = append(answers, opts[choice].Weights)
	}

	var keywords []string
	for i, choice := range req.Extended {
		if i >= len(mood.ExtendedQuestions) {
			break
		}
		opts := mood.ExtendedQuestions[i].Options
		if choice < 0 || choice >= len(opts) {
			continue
		}
		keywords = append(keywords, opts[choice].Keywords...)
	}

	result, err := h.svc.ResolveSurvey(c.Context(), answers, keywords)
	if err != nil {
		slog.Error("mood resolution failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to resolve mood",
		})
	}
	return c.JSON(result)
}
