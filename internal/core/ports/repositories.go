package ports

import (
	"context"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// DoctorRepository persists doctors. Reads preload the doctor's patients and
// their pillboxes. Lookups of a missing id return *domain.ReferenceNotFoundError.
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	// Update overwrites the contact fields (names, email, phone) of d.ID and
	// returns the refreshed record. The credential hash is never written.
	Update(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

// PatientRepository persists patients. Reads preload the linked pillbox.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	// Update overwrites names, email, phone and doctor reference.
	Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id int64) error
}

// PillboxRepository persists pillboxes.
type PillboxRepository interface {
	// Create inserts and commits a single unowned pillbox.
	Create(ctx context.Context) (*domain.Pillbox, error)
	FindByID(ctx context.Context, id int64) (*domain.Pillbox, error)
	List(ctx context.Context) ([]*domain.Pillbox, error)
	AssignOwner(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error)
	Delete(ctx context.Context, id int64) error
}

// AuditLog records mutations. Failures are never fatal to the caller.
type AuditLog interface {
	Record(ctx context.Context, event domain.RecordEvent) error
}

// BatchReplayStore remembers which pillbox ids a keyed bulk-create produced.
type BatchReplayStore interface {
	Recall(ctx context.Context, key string) (ids []int64, found bool, err error)
	Remember(ctx context.Context, key string, ids []int64) error
}
