package service

import (
	"context"
	"fmt"
	"time"

	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

// TrackingService appends and reads the per-parcel movement log.
type TrackingService interface {
	Append(ctx context.Context, event *model.TrackingEvent) (*model.TrackingEvent, error)
	History(ctx context.Context, trackingID string) ([]model.TrackingEvent, error)
}

type trackingService struct {
	repo repository.TrackingRepository
	now  func() time.Time
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(repo repository.TrackingRepository) TrackingService {
	return &trackingService{repo: repo, now: time.Now}
}

// Append inserts a tracking event, stamping the timestamp when the caller
// left it unset.
func (s *trackingService) Append(ctx context.Context, event *model.TrackingEvent) (*model.TrackingEvent, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("append tracking event: %w", err)
	}
	return event, nil
}

// History returns the movement log for a tracking id, oldest first.
func (s *trackingService) History(ctx context.Context, trackingID string) ([]model.TrackingEvent, error) {
	return s.repo.ListByTrackingID(ctx, trackingID)
}
