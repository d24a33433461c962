package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

func TestToEventDoc(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	doc := toEventDoc(domain.RecordEvent{
		Entity:     domain.EntityPillbox,
		RecordID:   3,
		Action:     domain.ActionAssigned,
		RefID:      9,
		OccurredAt: at,
	})

	if doc.Entity != "pillbox" || doc.Action != "assigned" || doc.RecordID != 3 || doc.RefID != 9 {
		t.Fatalf("unexpected doc: %+v", doc)
	}
	if doc.OccurredAt.Location() != time.UTC || !doc.OccurredAt.Equal(at) {
		t.Fatalf("expected UTC timestamp, got %v", doc.OccurredAt)
	}

	raw, err := bson.Marshal(toEventDoc(domain.RecordEvent{Entity: domain.EntityDoctor, RecordID: 1, Action: domain.ActionCreated}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["ref_id"]; ok {
		t.Fatalf("ref_id should be omitted when zero")
	}
}
