package repository

import (
	"context"

	"gorm.io/gorm"

	"parcelhub/internal/model"
)

// TrackingRepository defines movement log persistence operations. The log is
// append-only.
type TrackingRepository interface {
	Create(ctx context.Context, event *model.TrackingEvent) error
	ListByTrackingID(ctx context.Context, trackingID string) ([]model.TrackingEvent, error)
}

type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new tracking repository.
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(ctx context.Context, event *model.TrackingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByTrackingID returns the movement log oldest first.
func (r *trackingRepository) ListByTrackingID(ctx context.Context, trackingID string) ([]model.TrackingEvent, error) {
	var events []model.TrackingEvent
	err := r.db.WithContext(ctx).
		Where("tracking_id = ?", trackingID).
		Order("timestamp ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
