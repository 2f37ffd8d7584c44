package tablestore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists entities in a single relation keyed by
// (table_name, partition_key, row_key). Attributes are stored as JSONB.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore instantiates a store scoped to one logical table.
func NewPostgresStore(pool *pgxpool.Pool, table string) *PostgresStore {
	return &PostgresStore{pool: pool, table: table}
}

func (s *PostgresStore) Upsert(ctx context.Context, entity Entity) error {
	const query = `
        INSERT INTO store_entities (table_name, partition_key, row_key, attributes)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (table_name, partition_key, row_key)
        DO UPDATE SET attributes = EXCLUDED.attributes, updated_at = NOW()`
	_, err := s.pool.Exec(ctx, query, s.table, entity.PartitionKey, entity.RowKey, entity.Attributes)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, partitionKey, rowKey string) (Entity, error) {
	const query = `
        SELECT attributes FROM store_entities
        WHERE table_name=$1 AND partition_key=$2 AND row_key=$3`
	entity := Entity{PartitionKey: partitionKey, RowKey: rowKey}
	if err := s.pool.QueryRow(ctx, query, s.table, partitionKey, rowKey).Scan(&entity.Attributes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entity{}, ErrNotFound
		}
		return Entity{}, err
	}
	return entity, nil
}
