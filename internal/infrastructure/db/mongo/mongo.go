package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for the audit-trail database. Timeout bounds
// the initial connect, index creation and every audit write.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// AuditTrail owns the client behind the record_events collection.
type AuditTrail struct {
	client *mongo.Client
	log    *AuditLog
}

// OpenAuditTrail connects to MongoDB, verifies connectivity and makes sure the
// record_events lookup index exists. Any failure closes the client.
func OpenAuditTrail(ctx context.Context, cfg Config) (*AuditTrail, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo: database name is required")
	}
	timeout := cfg.timeout()

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log := NewAuditLog(client.Database(cfg.Database), timeout)
	if err := log.EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}

	return &AuditTrail{client: client, log: log}, nil
}

// Log returns the audit writer.
func (t *AuditTrail) Log() *AuditLog { return t.log }

func (t *AuditTrail) Ping(ctx context.Context) error {
	return t.client.Ping(ctx, nil)
}

func (t *AuditTrail) Close(ctx context.Context) error {
	return t.client.Disconnect(ctx)
}
