package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-gateway/internal/api/dto"
	"github.com/spec-kit/helpdesk-gateway/internal/service"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// CompletionsHandler manages the model passthrough endpoint.
type CompletionsHandler struct {
	service *service.CompletionService
}

// NewCompletionsHandler constructs handler.
func NewCompletionsHandler(completionService *service.CompletionService) *CompletionsHandler {
	return &CompletionsHandler{service: completionService}
}

// RunPrompt POST /api/run_gpt4o_advanced.
func (h *CompletionsHandler) RunPrompt(c *fiber.Ctx) error {
	var req dto.CompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON body")
	}

	answer, err := h.service.RunPrompt(c.UserContext(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(dto.CompletionResponse{Answer: answer})
}
