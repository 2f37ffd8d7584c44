package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk-gateway/internal/domain"
	"github.com/spec-kit/helpdesk-gateway/internal/tablestore"
)

// TicketPartition is the single fixed partition all tickets live in.
const TicketPartition = "Tickets"

// Attribute column names on the ticket entity.
const (
	attrUserID           = "user_id"
	attrIssueDescription = "issue_description"
	attrStatus           = "status"
)

// ErrTicketNotFound signals an exact-id lookup miss.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository encapsulates ticket persistence over the table store.
type TicketRepository interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
}

type ticketRepository struct {
	store tablestore.Store
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(store tablestore.Store) TicketRepository {
	return &ticketRepository{store: store}
}

// Save upserts the full ticket record. Overwrite semantics make the write
// safe to retry; a colliding id silently replaces the prior row.
func (r *ticketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	return r.store.Upsert(ctx, tablestore.Entity{
		PartitionKey: TicketPartition,
		RowKey:       ticket.ID,
		Attributes: map[string]string{
			attrUserID:           ticket.UserID,
			attrIssueDescription: ticket.IssueDescription,
			attrStatus:           string(ticket.Status),
		},
	})
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	entity, err := r.store.Get(ctx, TicketPartition, id)
	if err != nil {
		if errors.Is(err, tablestore.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:               id,
		UserID:           entity.Attributes[attrUserID],
		IssueDescription: entity.Attributes[attrIssueDescription],
		Status:           domain.TicketStatus(entity.Attributes[attrStatus]),
	}
	// Rows written out-of-band may lack the status column.
	if _, ok := entity.Attributes[attrStatus]; !ok {
		ticket.Status = domain.TicketStatusUnknown
	}
	return ticket, nil
}
