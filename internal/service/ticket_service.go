package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-gateway/internal/domain"
	"github.com/spec-kit/helpdesk-gateway/internal/events"
	"github.com/spec-kit/helpdesk-gateway/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

// TicketService coordinates the ticket lifecycle: creation and status lookup.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// TicketResult is the client-visible outcome of a ticket operation.
type TicketResult struct {
	TicketID string
	Status   domain.TicketStatus
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateTicket generates an id, persists the record, and only then reports
// success. The generated id is discarded if the write fails; callers must
// never be told a ticket exists unless it durably exists.
func (s *TicketService) CreateTicket(ctx context.Context, userID, issueDescription string) (*TicketResult, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(issueDescription) == "" {
		return nil, apperrors.NewValidationError("Missing required fields: user_id, issue_description")
	}

	ticket := &domain.Ticket{
		ID:               generateID("INC-"),
		UserID:           userID,
		IssueDescription: issueDescription,
		Status:           domain.TicketStatusOpen,
	}

	if err := s.tickets.Save(ctx, ticket); err != nil {
		s.logger.Error("ticket save failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		return nil, apperrors.NewStorageError("Error saving ticket in storage", err)
	}
	s.logger.Info("ticket saved", zap.String("ticket_id", ticket.ID))

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCreated,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Status:   string(ticket.Status),
		},
	})

	return &TicketResult{TicketID: ticket.ID, Status: ticket.Status}, nil
}

// GetTicketStatus looks up a ticket by exact id within the fixed partition.
// Read-path store errors other than a miss surface as unclassified 500s;
// nothing is retried.
func (s *TicketService) GetTicketStatus(ctx context.Context, ticketID string) (*TicketResult, error) {
	if strings.TrimSpace(ticketID) == "" {
		return nil, apperrors.NewValidationError("Missing required field: ticket_id")
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			s.logger.Warn("ticket not found", zap.String("ticket_id", ticketID))
			return nil, apperrors.NewNotFound("Ticket not found")
		}
		return nil, err
	}

	s.logger.Info("ticket found",
		zap.String("ticket_id", ticketID),
		zap.String("status", string(ticket.Status)))
	return &TicketResult{TicketID: ticketID, Status: ticket.Status}, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
