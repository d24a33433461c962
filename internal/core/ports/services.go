package ports

import (
	"context"
	"iter"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// ContactInput carries the fields shared by doctor and patient writes.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// PatientInput carries a patient write, including its doctor reference.
type PatientInput struct {
	ContactInput
	DoctorID int64
}

// CreatedDoctor bundles a freshly persisted doctor with the one-time
// plaintext credential issued for it. The plaintext exists nowhere else.
type CreatedDoctor struct {
	Doctor   *domain.Doctor
	Password string
}

// CreatedPatient is the patient counterpart of CreatedDoctor.
type CreatedPatient struct {
	Patient  *domain.Patient
	Password string
}

// CreatePillboxesInput carries a bulk-create request.
type CreatePillboxesInput struct {
	Count int
	// IdempotencyKey, when set, replays the records of a previous complete
	// batch created under the same key.
	IdempotencyKey string
	// OnReplay, when set, is called once before the records of a replayed
	// batch are yielded. It is not called for freshly created batches.
	OnReplay func()
}

type DoctorService interface {
	CreateDoctor(ctx context.Context, in ContactInput) (*CreatedDoctor, error)
	GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error)
	ListDoctors(ctx context.Context) ([]*domain.Doctor, error)
	UpdateDoctor(ctx context.Context, id int64, in ContactInput) (*domain.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

type PatientService interface {
	CreatePatient(ctx context.Context, in PatientInput) (*CreatedPatient, error)
	GetPatient(ctx context.Context, id int64) (*domain.Patient, error)
	ListPatients(ctx context.Context) ([]*domain.Patient, error)
	UpdatePatient(ctx context.Context, id int64, in PatientInput) (*domain.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type PillboxService interface {
	// CreatePillboxes returns a lazy sequence that inserts one pillbox per
	// step. The sequence can be ranged over once; it stops after yielding the
	// first error.
	CreatePillboxes(ctx context.Context, in CreatePillboxesInput) iter.Seq2[*domain.Pillbox, error]
	GetPillbox(ctx context.Context, id int64) (*domain.Pillbox, error)
	ListPillboxes(ctx context.Context) ([]*domain.Pillbox, error)
	AssignOwner(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error)
	DeletePillbox(ctx context.Context, id int64) error
}
