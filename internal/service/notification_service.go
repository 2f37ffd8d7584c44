package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-gateway/internal/events"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// NotificationService acknowledges notification requests. It is a
// placeholder for a future delivery channel: no retries, no delivery
// guarantee, nothing persisted.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// SendNotification validates the request and acknowledges receipt.
func (n *NotificationService) SendNotification(ctx context.Context, userID, message string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(message) == "" {
		return apperrors.NewValidationError("Missing required fields: user_id, message")
	}

	n.logger.Info("notification accepted",
		zap.String("user_id", userID),
		zap.String("message", message))

	if n.dispatcher != nil {
		_ = n.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventNotificationSent,
			UserID:    userID,
			Timestamp: time.Now().UTC(),
			Payload:   events.NotificationSentPayload{Message: message},
		})
	}
	return nil
}

// RegisterHandlers subscribes the ticket-created audit hook. Creation of a
// ticket logs a notification stub the same way the endpoint does.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	return nil
}
