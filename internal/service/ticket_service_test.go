package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-gateway/internal/domain"
	"github.com/spec-kit/helpdesk-gateway/internal/repository"
	"github.com/spec-kit/helpdesk-gateway/internal/tablestore"
	apperrors "github.com/spec-kit/helpdesk-gateway/pkg/util"
)

var ticketIDPattern = regexp.MustCompile(`^INC-[0-9A-F]{8}$`)

func newTicketService(store tablestore.Store) *TicketService {
	return NewTicketService(TicketDependencies{
		TicketRepo: repository.NewTicketRepository(store),
		Logger:     zap.NewNop(),
	})
}

func TestCreateTicket(t *testing.T) {
	store := tablestore.NewMemoryStore()
	svc := newTicketService(store)

	result, err := svc.CreateTicket(context.Background(), "u-42", "printer on fire")
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if !ticketIDPattern.MatchString(result.TicketID) {
		t.Errorf("ticket id %q does not match INC-[0-9A-F]{8}", result.TicketID)
	}
	if result.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want OPEN", result.Status)
	}

	// A subsequent lookup must see the durable record.
	lookup, err := svc.GetTicketStatus(context.Background(), result.TicketID)
	if err != nil {
		t.Fatalf("GetTicketStatus after create: %v", err)
	}
	if lookup.Status != domain.TicketStatusOpen {
		t.Errorf("lookup status = %q, want OPEN", lookup.Status)
	}
}

func TestCreateTicketValidation(t *testing.T) {
	store := tablestore.NewMemoryStore()
	svc := newTicketService(store)

	cases := []struct {
		name             string
		userID           string
		issueDescription string
	}{
		{"missing user_id", "", "broken vpn"},
		{"missing issue_description", "u-1", ""},
		{"whitespace only", "   ", "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTicket(context.Background(), tc.userID, tc.issueDescription)
			assertDomainCode(t, err, "VALIDATION_FAILED", 400)
		})
	}

	if store.Len() != 0 {
		t.Errorf("store has %d rows after rejected requests, want 0", store.Len())
	}
}

func TestCreateTicketStorageFailure(t *testing.T) {
	store := tablestore.NewMemoryStore()
	store.FailWith(errors.New("table service unavailable"))
	svc := newTicketService(store)

	_, err := svc.CreateTicket(context.Background(), "u-7", "laptop stolen")
	assertDomainCode(t, err, "STORAGE_FAILED", 500)
	if got := apperrors.ToDomainError(err).Message; got != "Error saving ticket in storage" {
		t.Errorf("message = %q", got)
	}

	// The generated id was discarded: nothing may be visible afterwards.
	store.FailWith(nil)
	if store.Len() != 0 {
		t.Errorf("store has %d rows after failed write, want 0", store.Len())
	}
}

func TestCreateTicketNotIdempotent(t *testing.T) {
	svc := newTicketService(tablestore.NewMemoryStore())

	first, err := svc.CreateTicket(context.Background(), "u-1", "same issue")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.CreateTicket(context.Background(), "u-1", "same issue")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.TicketID == second.TicketID {
		t.Errorf("identical requests produced the same id %q", first.TicketID)
	}
}

func TestGetTicketStatusValidation(t *testing.T) {
	svc := newTicketService(tablestore.NewMemoryStore())

	_, err := svc.GetTicketStatus(context.Background(), "")
	assertDomainCode(t, err, "VALIDATION_FAILED", 400)
}

func TestGetTicketStatusNotFound(t *testing.T) {
	svc := newTicketService(tablestore.NewMemoryStore())

	_, err := svc.GetTicketStatus(context.Background(), "INC-DEADBEEF")
	assertDomainCode(t, err, "NOT_FOUND", 404)
	if got := apperrors.ToDomainError(err).Message; got != "Ticket not found" {
		t.Errorf("message = %q, want 'Ticket not found'", got)
	}
}

func TestGetTicketStatusMissingStatusAttribute(t *testing.T) {
	store := tablestore.NewMemoryStore()
	// Row written out-of-band without a status column.
	if err := store.Upsert(context.Background(), tablestore.Entity{
		PartitionKey: repository.TicketPartition,
		RowKey:       "INC-0000AAAA",
		Attributes:   map[string]string{"user_id": "u-9"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTicketService(store)
	result, err := svc.GetTicketStatus(context.Background(), "INC-0000AAAA")
	if err != nil {
		t.Fatalf("GetTicketStatus: %v", err)
	}
	if result.Status != domain.TicketStatusUnknown {
		t.Errorf("status = %q, want UNKNOWN", result.Status)
	}
}

func TestGetTicketStatusReadsForeignStatusVerbatim(t *testing.T) {
	store := tablestore.NewMemoryStore()
	if err := store.Upsert(context.Background(), tablestore.Entity{
		PartitionKey: repository.TicketPartition,
		RowKey:       "INC-0000BBBB",
		Attributes:   map[string]string{"user_id": "u-9", "status": "RESOLVED"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTicketService(store)
	result, err := svc.GetTicketStatus(context.Background(), "INC-0000BBBB")
	if err != nil {
		t.Fatalf("GetTicketStatus: %v", err)
	}
	if result.Status != "RESOLVED" {
		t.Errorf("status = %q, want RESOLVED", result.Status)
	}
}

func assertDomainCode(t *testing.T, err error, code string, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != code {
		t.Errorf("code = %q, want %q", domainErr.Code, code)
	}
	if domainErr.HTTPStatus != status {
		t.Errorf("status = %d, want %d", domainErr.HTTPStatus, status)
	}
}
