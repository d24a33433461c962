package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
)

// PillboxRepository implements ports.PillboxRepository on postgres.
type PillboxRepository struct {
	db *gorm.DB
}

func NewPillboxRepository(db *gorm.DB) *PillboxRepository {
	return &PillboxRepository{db: db}
}

// Create inserts a single unowned pillbox in its own statement, so it is
// committed independently of any other insert in the same batch.
func (r *PillboxRepository) Create(ctx context.Context) (*domain.Pillbox, error) {
	row := pillboxRow{}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert pillbox: %w", translateWrite(err, domain.EntityPillbox, nil))
	}
	return toPillbox(&row), nil
}

func (r *PillboxRepository) FindByID(ctx context.Context, id int64) (*domain.Pillbox, error) {
	var row pillboxRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.EntityPillbox, id)
		}
		return nil, fmt.Errorf("find pillbox: %w", translateCommon(err))
	}
	return toPillbox(&row), nil
}

func (r *PillboxRepository) List(ctx context.Context) ([]*domain.Pillbox, error) {
	var rows []pillboxRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list pillboxes: %w", translateCommon(err))
	}
	out := make([]*domain.Pillbox, len(rows))
	for i := range rows {
		out[i] = toPillbox(&rows[i])
	}
	return out, nil
}

func (r *PillboxRepository) AssignOwner(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error) {
	res := r.db.WithContext(ctx).
		Model(&pillboxRow{ID: id}).
		Update("owner_id", ownerColumn(ownerID))
	if res.Error != nil {
		missing := domain.NotFound(domain.EntityPatient, ownerID)
		return nil, fmt.Errorf("assign pillbox owner: %w", translateWrite(res.Error, domain.EntityPillbox, missing))
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.EntityPillbox, id)
	}
	return r.FindByID(ctx, id)
}

func (r *PillboxRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&pillboxRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete pillbox: %w", translateDelete(res.Error, domain.EntityPillbox, id))
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.EntityPillbox, id)
	}
	return nil
}
