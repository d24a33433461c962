package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// PatientRepository implements ports.PatientRepository on postgres.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	row := patientRow{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		HashedPassword: p.PasswordHash,
		DoctorID:       p.DoctorID,
	}
	if err := r.db.WithContext(ctx).Omit("Pillbox").Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert patient: %w", translateWrite(err, domain.EntityPatient, nil))
	}
	return r.FindByID(ctx, row.ID)
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	var row patientRow
	if err := r.db.WithContext(ctx).Preload("Pillbox").Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.EntityPatient, id)
		}
		return nil, fmt.Errorf("find patient: %w", translateCommon(err))
	}
	return toPatient(&row), nil
}

func (r *PatientRepository) List(ctx context.Context) ([]*domain.Patient, error) {
	var rows []patientRow
	if err := r.db.WithContext(ctx).Preload("Pillbox").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", translateCommon(err))
	}
	out := make([]*domain.Patient, len(rows))
	for i := range rows {
		out[i] = toPatient(&rows[i])
	}
	return out, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	res := r.db.WithContext(ctx).
		Model(&patientRow{ID: p.ID}).
		Select("first_name", "last_name", "email", "phone_number", "doctor_id").
		Updates(patientRow{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			PhoneNumber: p.PhoneNumber,
			DoctorID:    p.DoctorID,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update patient: %w", translateWrite(res.Error, domain.EntityPatient, nil))
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.EntityPatient, p.ID)
	}
	return r.FindByID(ctx, p.ID)
}

func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&patientRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete patient: %w", translateDelete(res.Error, domain.EntityPatient, id))
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.EntityPatient, id)
	}
	return nil
}
