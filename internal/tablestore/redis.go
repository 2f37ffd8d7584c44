package tablestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each partition in one Redis hash. The hash key is
// "<table>:<partition>", fields are row keys, values JSON-encoded
// attribute maps. HSET gives the same overwrite semantics as an upsert.
type RedisStore struct {
	client *redis.Client
	table  string
}

// NewRedisStore instantiates a store scoped to one logical table.
func NewRedisStore(client *redis.Client, table string) *RedisStore {
	return &RedisStore{client: client, table: table}
}

func (s *RedisStore) Upsert(ctx context.Context, entity Entity) error {
	payload, err := json.Marshal(entity.Attributes)
	if err != nil {
		return fmt.Errorf("encode attributes: %w", err)
	}
	return s.client.HSet(ctx, s.partitionKey(entity.PartitionKey), entity.RowKey, payload).Err()
}

func (s *RedisStore) Get(ctx context.Context, partitionKey, rowKey string) (Entity, error) {
	payload, err := s.client.HGet(ctx, s.partitionKey(partitionKey), rowKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entity{}, ErrNotFound
		}
		return Entity{}, err
	}

	entity := Entity{PartitionKey: partitionKey, RowKey: rowKey}
	if err := json.Unmarshal([]byte(payload), &entity.Attributes); err != nil {
		return Entity{}, fmt.Errorf("decode attributes: %w", err)
	}
	return entity, nil
}

func (s *RedisStore) partitionKey(partition string) string {
	return s.table + ":" + partition
}
