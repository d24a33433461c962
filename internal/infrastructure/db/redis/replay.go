package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReplayTTL = 24 * time.Hour

// BatchReplayStore remembers the pillbox ids produced by a keyed bulk create.
// Key format: idempotency:pillboxes:<key>
type BatchReplayStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBatchReplayStore wraps client; ttl <= 0 falls back to 24h.
func NewBatchReplayStore(client *redis.Client, ttl time.Duration) *BatchReplayStore {
	if ttl <= 0 {
		ttl = defaultReplayTTL
	}
	return &BatchReplayStore{client: client, ttl: ttl}
}

// Recall returns the ids stored under key, if any.
func (s *BatchReplayStore) Recall(ctx context.Context, key string) ([]int64, bool, error) {
	raw, err := s.client.Get(ctx, replayKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("replay recall: %w", err)
	}
	ids, err := decodeIDs(raw)
	if err != nil {
		return nil, false, fmt.Errorf("replay recall: %w", err)
	}
	return ids, true, nil
}

// Remember stores ids under key. An existing entry is kept.
func (s *BatchReplayStore) Remember(ctx context.Context, key string, ids []int64) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("replay remember: %w", err)
	}
	if err := s.client.SetNX(ctx, replayKey(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("replay remember: %w", err)
	}
	return nil
}

func (s *BatchReplayStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *BatchReplayStore) Close() error {
	return s.client.Close()
}

func replayKey(key string) string {
	return "idempotency:pillboxes:" + key
}

func decodeIDs(raw []byte) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
