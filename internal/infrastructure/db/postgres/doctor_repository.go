package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// DoctorRepository implements ports.DoctorRepository on postgres.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Patients", orderByID).Preload("Patients.Pillbox")
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	row := doctorRow{
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		HashedPassword: d.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Omit("Patients").Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert doctor: %w", translateWrite(err, domain.EntityDoctor, nil))
	}
	return r.FindByID(ctx, row.ID)
}

func (r *DoctorRepository) FindByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	var row doctorRow
	if err := r.withRelations(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.EntityDoctor, id)
		}
		return nil, fmt.Errorf("find doctor: %w", translateCommon(err))
	}
	return toDoctor(&row), nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	var rows []doctorRow
	if err := r.withRelations(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", translateCommon(err))
	}
	out := make([]*domain.Doctor, len(rows))
	for i := range rows {
		out[i] = toDoctor(&rows[i])
	}
	return out, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	res := r.db.WithContext(ctx).
		Model(&doctorRow{ID: d.ID}).
		Select("first_name", "last_name", "email", "phone_number").
		Updates(doctorRow{
			FirstName:   d.FirstName,
			LastName:    d.LastName,
			Email:       d.Email,
			PhoneNumber: d.PhoneNumber,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update doctor: %w", translateWrite(res.Error, domain.EntityDoctor, nil))
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.EntityDoctor, d.ID)
	}
	return r.FindByID(ctx, d.ID)
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&doctorRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete doctor: %w", translateDelete(res.Error, domain.EntityDoctor, id))
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.EntityDoctor, id)
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
