package postgres

import "github.com/pillbox-tracker/records-api/internal/core/domain"

// Unique index names double as the constraint names postgres reports on
// violation; see constraintFields.
const (
	idxDoctorEmail  = "doctors_email_key"
	idxDoctorPhone  = "doctors_phone_number_key"
	idxPatientEmail = "patients_email_key"
	idxPatientPhone = "patients_phone_number_key"
	idxPillboxOwner = "pillboxes_owner_id_key"
)

type doctorRow struct {
	ID             int64  `gorm:"primaryKey"`
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Email          string `gorm:"not null;uniqueIndex:doctors_email_key"`
	PhoneNumber    string `gorm:"not null;uniqueIndex:doctors_phone_number_key"`
	HashedPassword string `gorm:"not null"`

	// doctor_id is a plain indexed column: patients may name a doctor that
	// does not exist.
	Patients []patientRow `gorm:"foreignKey:DoctorID;constraint:-"`
}

func (doctorRow) TableName() string { return "doctors" }

type patientRow struct {
	ID             int64  `gorm:"primaryKey"`
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Email          string `gorm:"not null;uniqueIndex:patients_email_key"`
	PhoneNumber    string `gorm:"not null;uniqueIndex:patients_phone_number_key"`
	HashedPassword string `gorm:"not null"`
	DoctorID       int64  `gorm:"not null;index"`

	Pillbox *pillboxRow `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (patientRow) TableName() string { return "patients" }

// pillboxRow stores the unowned sentinel as NULL so owner_id can carry a
// foreign key to patients.
type pillboxRow struct {
	ID      int64  `gorm:"primaryKey"`
	OwnerID *int64 `gorm:"uniqueIndex:pillboxes_owner_id_key"`
}

func (pillboxRow) TableName() string { return "pillboxes" }

func toDoctor(r *doctorRow) *domain.Doctor {
	d := &domain.Doctor{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		PasswordHash: r.HashedPassword,
	}
	if len(r.Patients) > 0 {
		d.Patients = make([]domain.Patient, len(r.Patients))
		for i := range r.Patients {
			d.Patients[i] = *toPatient(&r.Patients[i])
		}
	}
	return d
}

func toPatient(r *patientRow) *domain.Patient {
	p := &domain.Patient{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		PasswordHash: r.HashedPassword,
		DoctorID:     r.DoctorID,
	}
	if r.Pillbox != nil {
		p.Pillbox = toPillbox(r.Pillbox)
	}
	return p
}

func toPillbox(r *pillboxRow) *domain.Pillbox {
	pb := &domain.Pillbox{ID: r.ID, OwnerID: domain.Unowned}
	if r.OwnerID != nil {
		pb.OwnerID = *r.OwnerID
	}
	return pb
}

// ownerColumn maps the domain sentinel back to NULL.
func ownerColumn(ownerID int64) *int64 {
	if ownerID == domain.Unowned {
		return nil
	}
	return &ownerID
}
