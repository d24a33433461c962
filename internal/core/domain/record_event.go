package domain

import "time"

// RecordAction is the kind of mutation captured in the audit trail.
type RecordAction string

const (
	ActionCreated  RecordAction = "created"
	ActionUpdated  RecordAction = "updated"
	ActionDeleted  RecordAction = "deleted"
	ActionAssigned RecordAction = "assigned"
)

// RecordEvent is an audit entry for a single record mutation. It never carries
// credentials.
type RecordEvent struct {
	Entity     Entity
	RecordID   int64
	Action     RecordAction
	RefID      int64 // related record (doctor of a patient, owner of a pillbox); 0 when none
	OccurredAt time.Time
}
