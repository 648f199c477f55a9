package handler

import (
	"errors"

	"hirex/internal/delivery/http/dto"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/domain/matching"
	"hirex/internal/pkg/response"
	"hirex/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

// Match scores the posted candidates against the posted jobs. Both sides
// travel in the request body; nothing is persisted.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params := usecase.MatchParams{
		Candidates: make([]matching.Candidate, 0, len(req.Candidates)),
		Jobs:       make([]matching.Job, 0, len(req.Jobs)),
		Weights:    req.Weights.ToOverrides(),
		TopN:       req.TopN,
	}
	for _, cr := range req.Candidates {
		params.Candidates = append(params.Candidates, cr.ToDomain())
	}
	for _, jr := range req.Jobs {
		params.Jobs = append(params.Jobs, jr.ToDomain())
	}

	out, err := h.uc.Match(c.Context(), params)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(out))
}

func mapMatchError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, matching.ErrInvalidRequest):
		return middleware.NewAppError(fiber.StatusBadRequest, "top_n must be at least 1", nil, err)
	case errors.Is(err, matching.ErrInvalidWeight):
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid weights", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
