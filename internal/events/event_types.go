package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated    EventType = "ticket_created"
	EventWorkflowStarted  EventType = "workflow_started"
	EventNotificationSent EventType = "notification_sent"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
}

// WorkflowStartedPayload payload.
type WorkflowStartedPayload struct {
	WorkflowID  string `json:"workflow_id"`
	RequestType string `json:"request_type"`
}

// NotificationSentPayload payload.
type NotificationSentPayload struct {
	Message string `json:"message"`
}
