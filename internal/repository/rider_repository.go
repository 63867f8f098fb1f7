package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcelhub/internal/model"
)

// RiderRepository defines rider persistence operations.
type RiderRepository interface {
	Create(ctx context.Context, rider *model.Rider) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rider, error)
	ListByStatus(ctx context.Context, status model.RiderStatus, district string) ([]model.Rider, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
}

type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository builds a GORM-backed repository.
func NewRiderRepository(db *gorm.DB) RiderRepository {
	return &riderRepository{db: db}
}

func (r *riderRepository) Create(ctx context.Context, rider *model.Rider) error {
	return r.db.WithContext(ctx).Create(rider).Error
}

func (r *riderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rider, error) {
	var rider model.Rider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rider).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

// ListByStatus returns riders in the given status, optionally narrowed to a
// district, newest first.
func (r *riderRepository) ListByStatus(ctx context.Context, status model.RiderStatus, district string) ([]model.Rider, error) {
	q := r.db.WithContext(ctx).Where("status = ?", status)
	if district != "" {
		q = q.Where("district = ?", district)
	}

	var riders []model.Rider
	if err := q.Order("created_at DESC").Find(&riders).Error; err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *riderRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Rider{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
