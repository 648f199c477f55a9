package handler

import (
	"context"
	"log"
	"strings"
	"time"

	"hirex/internal/config"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type ScrapeCompletedRequest struct {
	JobsUpserted int    `json:"jobs_upserted"`
	CompletedAt  string `json:"completed_at"`
}

type recommendationInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

// ScrapeCompletedHandler receives the scraper's completion webhook, drops
// stale recommendation caches and pushes a websocket event.
type ScrapeCompletedHandler struct {
	cfg    config.AppConfig
	cache  recommendationInvalidator
	logger *log.Logger
}

func NewScrapeCompletedHandler(cfg config.AppConfig, cache recommendationInvalidator, logger *log.Logger) *ScrapeCompletedHandler {
	return &ScrapeCompletedHandler{cfg: cfg, cache: cache, logger: logger}
}

func (h *ScrapeCompletedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/internal/scrape-completed", h.HandleScrapeCompleted)
}

func (h *ScrapeCompletedHandler) HandleScrapeCompleted(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if h.cfg.InternalToken == "" || tok != h.cfg.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req ScrapeCompletedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if req.CompletedAt != "" {
		if _, err := time.Parse(time.RFC3339, strings.TrimSpace(req.CompletedAt)); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if h.logger != nil {
		h.logger.Printf("Scrape completed | jobs_upserted=%d", req.JobsUpserted)
	}

	if h.cache != nil {
		if err := h.cache.InvalidateAll(c.Context()); err != nil && h.logger != nil {
			h.logger.Printf("Webhook error | error=%v", err)
		}
	}

	ws.NotifyJobsUpdated(req.JobsUpserted)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":        "cache_invalidated",
		"jobs_upserted": req.JobsUpserted,
	})
}
