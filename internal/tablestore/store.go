package tablestore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no entity exists under the
// requested partition and row key.
var ErrNotFound = errors.New("entity not found")

// Entity is one row in a partitioned key-value table. Row keys are unique
// within a partition; attributes are opaque string columns.
type Entity struct {
	PartitionKey string
	RowKey       string
	Attributes   map[string]string
}

// Store abstracts a partitioned key-value table. Upsert has overwrite
// semantics and no distinct "already exists" error, so writes are safe
// to retry.
type Store interface {
	Upsert(ctx context.Context, entity Entity) error
	Get(ctx context.Context, partitionKey, rowKey string) (Entity, error)
}
