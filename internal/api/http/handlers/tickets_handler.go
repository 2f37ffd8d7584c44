package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-gateway/internal/api/dto"
	"github.com/spec-kit/helpdesk-gateway/internal/service"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// TicketsHandler manages ticket creation and status lookup endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/create_ticket.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON body")
	}

	result, err := h.service.CreateTicket(c.UserContext(), req.UserID, req.IssueDescription)
	if err != nil {
		return err
	}
	return c.JSON(dto.TicketResponse{
		TicketID: result.TicketID,
		Status:   string(result.Status),
	})
}

// GetTicketStatus POST /api/get_ticket_status.
func (h *TicketsHandler) GetTicketStatus(c *fiber.Ctx) error {
	var req dto.TicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON body")
	}

	result, err := h.service.GetTicketStatus(c.UserContext(), req.TicketID)
	if err != nil {
		return err
	}
	return c.JSON(dto.TicketResponse{
		TicketID: result.TicketID,
		Status:   string(result.Status),
	})
}
