package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcelhub/internal/model"
)

// ParcelFilter narrows parcel listings. Zero values mean "no constraint".
type ParcelFilter struct {
	Email          string
	DeliveryStatus model.DeliveryStatus
	IsPaid         *bool
}

// ParcelRepository defines parcel persistence operations. Update methods
// report the number of rows modified so callers can distinguish "not found"
// from "written" without a prior read.
type ParcelRepository interface {
	Create(ctx context.Context, parcel *model.Parcel) error
	List(ctx context.Context, filter ParcelFilter) ([]model.Parcel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Parcel, error)
	ListByRider(ctx context.Context, riderEmail string, statuses []model.DeliveryStatus) ([]model.Parcel, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	UpdateFieldsInStatus(ctx context.Context, id uuid.UUID, statuses []model.DeliveryStatus, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type parcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository builds a GORM-backed repository.
func NewParcelRepository(db *gorm.DB) ParcelRepository {
	return &parcelRepository{db: db}
}

func (r *parcelRepository) Create(ctx context.Context, parcel *model.Parcel) error {
	return r.db.WithContext(ctx).Create(parcel).Error
}

// List returns matching parcels newest first. An empty filter returns all.
func (r *parcelRepository) List(ctx context.Context, filter ParcelFilter) ([]model.Parcel, error) {
	q := r.db.WithContext(ctx).Model(&model.Parcel{})
	if filter.Email != "" {
		q = q.Where("created_by = ?", filter.Email)
	}
	if filter.DeliveryStatus != "" {
		q = q.Where("delivery_status = ?", filter.DeliveryStatus)
	}
	if filter.IsPaid != nil {
		q = q.Where("is_paid = ?", *filter.IsPaid)
	}

	var parcels []model.Parcel
	if err := q.Order("created_at DESC").Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *parcelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Parcel, error) {
	var parcel model.Parcel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&parcel).Error; err != nil {
		return nil, err
	}
	return &parcel, nil
}

// ListByRider returns parcels assigned to the rider in any of the given
// statuses, newest first.
func (r *parcelRepository) ListByRider(ctx context.Context, riderEmail string, statuses []model.DeliveryStatus) ([]model.Parcel, error) {
	var parcels []model.Parcel
	err := r.db.WithContext(ctx).
		Where("assigned_rider_email = ?", riderEmail).
		Where("delivery_status IN ?", statuses).
		Order("created_at DESC").
		Find(&parcels).Error
	if err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *parcelRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Parcel{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// UpdateFieldsInStatus applies fields only when the parcel currently sits in
// one of the given statuses. A parcel outside them counts as zero rows.
func (r *parcelRepository) UpdateFieldsInStatus(ctx context.Context, id uuid.UUID, statuses []model.DeliveryStatus, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Parcel{}).
		Where("id = ?", id).
		Where("delivery_status IN ?", statuses).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *parcelRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Parcel{})
	return res.RowsAffected, res.Error
}
