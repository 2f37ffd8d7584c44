package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-gateway/internal/api/dto"
	"github.com/spec-kit/helpdesk-gateway/internal/service"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// WorkflowsHandler manages the provisioning-workflow stub endpoint.
type WorkflowsHandler struct {
	service *service.WorkflowService
}

// NewWorkflowsHandler constructs handler.
func NewWorkflowsHandler(workflowService *service.WorkflowService) *WorkflowsHandler {
	return &WorkflowsHandler{service: workflowService}
}

// StartWorkflow POST /api/start_provisioning_workflow.
func (h *WorkflowsHandler) StartWorkflow(c *fiber.Ctx) error {
	var req dto.WorkflowRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON body")
	}

	result, err := h.service.StartWorkflow(c.UserContext(), req.UserID, req.RequestType)
	if err != nil {
		return err
	}
	return c.JSON(dto.WorkflowResponse{
		WorkflowID: result.WorkflowID,
		Started:    result.Started,
	})
}
