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

type RecommendationHandler struct {
	uc          usecase.RecommendationUsecase
	defaultTopN int
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase, defaultTopN int) *RecommendationHandler {
	if defaultTopN < 1 {
		defaultTopN = matching.DefaultTopN
	}
	return &RecommendationHandler{uc: uc, defaultTopN: defaultTopN}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates/:candidate_id/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	candidateID := c.Params("candidate_id")
	topN := queryInt(c, "top_n", h.defaultTopN)

	out, err := h.uc.RecommendForCandidate(c.Context(), candidateID, topN)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateMatchesResponse(out))
}

func mapRecommendationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, matching.ErrInvalidRequest):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
