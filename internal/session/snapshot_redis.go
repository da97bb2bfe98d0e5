package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"github.com/techmart-labs/techmart-backend/pkg/redis"
)

// RedisSnapshots stores the state as one JSON document under a namespaced
// redis key.
type RedisSnapshots struct {
	client *redis.Client
	key    string
	logg   *logger.Logger
}

// NewRedisSnapshots binds a snapshot store to the given redis client and key.
func NewRedisSnapshots(client *redis.Client, key string, logg *logger.Logger) (*RedisSnapshots, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if key == "" {
		return nil, fmt.Errorf("snapshot key is required")
	}
	return &RedisSnapshots{client: client, key: redis.SnapshotKey(key), logg: logg}, nil
}

func (r *RedisSnapshots) Load(ctx context.Context) (State, error) {
	payload, err := r.client.Get(ctx, r.key)
	if err != nil {
		if redis.IsNil(err) {
			return DefaultState(), nil
		}
		return DefaultState(), fmt.Errorf("loading snapshot: %w", err)
	}
	return decodeSnapshot(ctx, []byte(payload), r.logg), nil
}

func (r *RedisSnapshots) Save(ctx context.Context, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, string(payload), 0); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
