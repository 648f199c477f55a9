package handler

import (
	"log"
	"strings"

	"hirex/internal/delivery/http/dto"
	"hirex/internal/delivery/http/middleware"
	"hirex/internal/pkg/response"
	"hirex/internal/repository"
	"hirex/internal/resume"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	candidates repository.CandidateRepository
	logger     *log.Logger
}

type parseResumeRequest struct {
	Text string `json:"text"`
}

func NewCandidateHandler(candidates repository.CandidateRepository, logger *log.Logger) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, logger: logger}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates/parse", h.ParseResume)
}

// ParseResume builds a candidate draft from plain resume text and stores it
// so it can be used for recommendations later.
func (h *CandidateHandler) ParseResume(c fiber.Ctx) error {
	var req parseResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume text is required", nil, nil)
	}

	cand := resume.Parse(req.Text)

	if h.candidates != nil {
		if err := h.candidates.Upsert(c.Context(), cand); err != nil {
			if h.logger != nil {
				h.logger.Printf("candidate upsert error | id=%s error=%v", cand.ID, err)
			}
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewCandidateResponse(cand))
}
