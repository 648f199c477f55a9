package handler

import (
	"strconv"

	"hirex/internal/delivery/http/dto"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/pkg/response"
	"hirex/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs repository.JobRepository
}

func NewJobsHandler(jobs repository.JobRepository) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 100)
	offset := queryInt(c, "offset", 0)

	jobs, err := h.jobs.ListActive(c.Context(), limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
