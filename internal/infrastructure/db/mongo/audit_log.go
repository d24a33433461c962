package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

const collectionRecordEvents = "record_events"

// AuditLog appends record mutations to the record_events collection.
type AuditLog struct {
	col     *mongo.Collection
	timeout time.Duration
}

// NewAuditLog writes into db; timeout <= 0 falls back to 10s per write.
func NewAuditLog(db *mongo.Database, timeout time.Duration) *AuditLog {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AuditLog{col: db.Collection(collectionRecordEvents), timeout: timeout}
}

type recordEventDoc struct {
	Entity     string    `bson:"entity"`
	RecordID   int64     `bson:"record_id"`
	Action     string    `bson:"action"`
	RefID      int64     `bson:"ref_id,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func toEventDoc(ev domain.RecordEvent) recordEventDoc {
	return recordEventDoc{
		Entity:     ev.Entity.String(),
		RecordID:   ev.RecordID,
		Action:     string(ev.Action),
		RefID:      ev.RefID,
		OccurredAt: ev.OccurredAt.UTC(),
	}
}

// Record inserts one audit document.
func (a *AuditLog) Record(ctx context.Context, ev domain.RecordEvent) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if _, err := a.col.InsertOne(ctx, toEventDoc(ev)); err != nil {
		return fmt.Errorf("insert record event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup index on (entity, record_id).
func (a *AuditLog) EnsureIndexes(ctx context.Context) error {
	_, err := a.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "entity", Value: 1}, {Key: "record_id", Value: 1}},
	})
	return err
}
