package tablestore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreUpsertOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, Entity{
		PartitionKey: "Tickets",
		RowKey:       "INC-00000001",
		Attributes:   map[string]string{"status": "OPEN"},
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := store.Upsert(ctx, Entity{
		PartitionKey: "Tickets",
		RowKey:       "INC-00000001",
		Attributes:   map[string]string{"status": "CLOSED"},
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	entity, err := store.Get(ctx, "Tickets", "INC-00000001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entity.Attributes["status"] != "CLOSED" {
		t.Errorf("status = %q, want CLOSED (last write wins)", entity.Attributes["status"])
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want 1", store.Len())
	}
}

func TestMemoryStoreGetMiss(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "Tickets", "INC-MISSING0")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStorePartitionIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, Entity{
		PartitionKey: "Tickets",
		RowKey:       "row",
		Attributes:   map[string]string{"a": "1"},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := store.Get(ctx, "Other", "row"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-partition read err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreCopiesAttributes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	attrs := map[string]string{"status": "OPEN"}
	if err := store.Upsert(ctx, Entity{PartitionKey: "p", RowKey: "r", Attributes: attrs}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	attrs["status"] = "MUTATED"

	entity, err := store.Get(ctx, "p", "r")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entity.Attributes["status"] != "OPEN" {
		t.Error("stored attributes aliased the caller's map")
	}
}
