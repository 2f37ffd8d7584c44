package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-gateway/internal/api/dto"
	"github.com/spec-kit/helpdesk-gateway/internal/service"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// NotificationsHandler manages the notification stub endpoint.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// SendNotification POST /api/send_notification.
func (h *NotificationsHandler) SendNotification(c *fiber.Ctx) error {
	var req dto.NotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON body")
	}

	if err := h.service.SendNotification(c.UserContext(), req.UserID, req.Message); err != nil {
		return err
	}
	return c.JSON(dto.NotificationResponse{Success: true})
}
