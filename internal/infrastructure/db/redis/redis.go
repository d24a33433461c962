package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the replay-store connection. Timeout
// bounds dialing, every command and the initial ping.
type Config struct {
	Addr      string
	DB        int
	Timeout   time.Duration
	ReplayTTL time.Duration
}

func (c Config) options() *redis.Options {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		DB:           c.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
}

// OpenReplayStore dials Redis, validates connectivity with a ping and returns
// the replay store for keyed pillbox batches.
func OpenReplayStore(ctx context.Context, cfg Config) (*BatchReplayStore, error) {
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewBatchReplayStore(client, cfg.ReplayTTL), nil
}
