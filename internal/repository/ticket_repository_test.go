package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/helpdesk-gateway/internal/domain"
	"github.com/spec-kit/helpdesk-gateway/internal/tablestore"
)

func TestTicketRoundTrip(t *testing.T) {
	store := tablestore.NewMemoryStore()
	repo := NewTicketRepository(store)
	ctx := context.Background()

	ticket := &domain.Ticket{
		ID:               "INC-12345678",
		UserID:           "u-5",
		IssueDescription: "monitor flickers",
		Status:           domain.TicketStatusOpen,
	}
	if err := repo.Save(ctx, ticket); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.GetByID(ctx, "INC-12345678")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.UserID != "u-5" || loaded.IssueDescription != "monitor flickers" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want OPEN", loaded.Status)
	}

	// The record lives in the fixed partition under its exact id.
	entity, err := store.Get(ctx, TicketPartition, "INC-12345678")
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	if entity.Attributes["status"] != "OPEN" {
		t.Errorf("stored status = %q", entity.Attributes["status"])
	}
}

func TestGetByIDMiss(t *testing.T) {
	repo := NewTicketRepository(tablestore.NewMemoryStore())

	_, err := repo.GetByID(context.Background(), "INC-00000000")
	if !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("err = %v, want ErrTicketNotFound", err)
	}
}
