package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcelhub/internal/errors"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

// ParcelService owns the parcel lifecycle state machine:
// pending -> rider_assigned -> in_transit -> delivered -> delivered_to_center.
// AssignRider is the only path into rider_assigned; UpdateStatus drives all
// later transitions and never moves a parcel backwards.
type ParcelService interface {
	Create(ctx context.Context, parcel *model.Parcel) (*model.Parcel, error)
	List(ctx context.Context, filter repository.ParcelFilter) ([]model.Parcel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Parcel, error)
	AssignRider(ctx context.Context, parcelID, riderID uuid.UUID, riderEmail, riderName string) (int64, error)
	UpdateStatus(ctx context.Context, parcelID uuid.UUID, status model.DeliveryStatus, updatedBy string) (int64, error)
	RequestCashout(ctx context.Context, parcelID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type parcelService struct {
	parcelRepo   repository.ParcelRepository
	riderRepo    repository.RiderRepository
	trackingRepo repository.TrackingRepository
	now          func() time.Time
}

// NewParcelService creates a new parcel service.
func NewParcelService(
	parcelRepo repository.ParcelRepository,
	riderRepo repository.RiderRepository,
	trackingRepo repository.TrackingRepository,
) ParcelService {
	return &parcelService{
		parcelRepo:   parcelRepo,
		riderRepo:    riderRepo,
		trackingRepo: trackingRepo,
		now:          time.Now,
	}
}

// Create inserts a new parcel in its initial state regardless of what the
// caller submitted for the lifecycle fields.
func (s *parcelService) Create(ctx context.Context, parcel *model.Parcel) (*model.Parcel, error) {
	parcel.ID = uuid.New()
	parcel.TrackingID = model.NewTrackingID(parcel.ID)
	parcel.DeliveryStatus = model.DeliveryStatusPending
	parcel.IsPaid = false
	parcel.AssignedRiderID = nil
	parcel.AssignedRiderEmail = ""
	parcel.AssignedRiderName = ""
	parcel.PickedAt = nil
	parcel.DeliveredAt = nil
	parcel.CashoutStatus = model.CashoutStatusNone
	parcel.CashoutRequestedAt = nil

	if err := s.parcelRepo.Create(ctx, parcel); err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return parcel, nil
}

func (s *parcelService) List(ctx context.Context, filter repository.ParcelFilter) ([]model.Parcel, error) {
	return s.parcelRepo.List(ctx, filter)
}

func (s *parcelService) Get(ctx context.Context, id uuid.UUID) (*model.Parcel, error) {
	parcel, err := s.parcelRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrParcelNotFound
		}
		return nil, err
	}
	return parcel, nil
}

// AssignRider moves a pending parcel to rider_assigned and records the
// assignment fields. Re-assigning while still rider_assigned is permitted;
// parcels further along the lifecycle are left untouched. The coupled rider
// work_status write is best effort and non-transactional: a partial failure
// after the parcel write is not rolled back. A nonexistent parcel reports
// zero rows modified rather than an error.
func (s *parcelService) AssignRider(ctx context.Context, parcelID, riderID uuid.UUID, riderEmail, riderName string) (int64, error) {
	assignable := []model.DeliveryStatus{model.DeliveryStatusPending, model.DeliveryStatusRiderAssigned}
	modified, err := s.parcelRepo.UpdateFieldsInStatus(ctx, parcelID, assignable, map[string]interface{}{
		"delivery_status":      model.DeliveryStatusRiderAssigned,
		"assigned_rider_id":    riderID,
		"assigned_rider_email": riderEmail,
		"assigned_rider_name":  riderName,
	})
	if err != nil {
		return 0, fmt.Errorf("assign rider: %w", err)
	}
	if modified == 0 {
		return 0, nil
	}

	if _, err := s.riderRepo.UpdateFields(ctx, riderID, map[string]interface{}{
		"work_status": model.RiderWorkStatusInDelivery,
	}); err != nil {
		return modified, fmt.Errorf("update rider work status: %w", err)
	}
	return modified, nil
}

// UpdateStatus advances the delivery status. picked_at and delivered_at are
// stamped exactly once, on first entry to in_transit and delivered; a repeated
// call with the same status leaves them untouched.
func (s *parcelService) UpdateStatus(ctx context.Context, parcelID uuid.UUID, status model.DeliveryStatus, updatedBy string) (int64, error) {
	if !model.ValidDeliveryStatus(status) {
		return 0, errors.ErrInvalidStatus
	}
	if status == model.DeliveryStatusRiderAssigned {
		// only AssignRider enters rider_assigned
		return 0, errors.ErrInvalidTransition
	}

	parcel, err := s.Get(ctx, parcelID)
	if err != nil {
		return 0, err
	}
	if !model.CanTransitionDelivery(parcel.DeliveryStatus, status) {
		return 0, errors.ErrInvalidTransition
	}

	fields := map[string]interface{}{
		"delivery_status": status,
	}
	now := s.now().UTC()
	if status == model.DeliveryStatusInTransit && parcel.PickedAt == nil {
		fields["picked_at"] = now
	}
	if status == model.DeliveryStatusDelivered && parcel.DeliveredAt == nil {
		fields["delivered_at"] = now
	}

	modified, err := s.parcelRepo.UpdateFields(ctx, parcelID, fields)
	if err != nil {
		return 0, fmt.Errorf("update status: %w", err)
	}

	s.appendTrackingEvent(ctx, parcel, status, updatedBy, now)

	return modified, nil
}

// appendTrackingEvent records the movement in the append-only log. Best
// effort: a log failure does not fail the status update.
func (s *parcelService) appendTrackingEvent(ctx context.Context, parcel *model.Parcel, status model.DeliveryStatus, updatedBy string, at time.Time) {
	_ = s.trackingRepo.Create(ctx, &model.TrackingEvent{
		TrackingID: parcel.TrackingID,
		ParcelID:   parcel.ID.String(),
		Status:     string(status),
		Message:    fmt.Sprintf("Parcel status updated to %s", status),
		Timestamp:  at,
		UpdatedBy:  updatedBy,
	})
}

// RequestCashout flags the parcel for rider cashout. No check is made on the
// parcel's payment or delivery state before allowing this; that matches the
// observed product behavior and is pending clarification.
func (s *parcelService) RequestCashout(ctx context.Context, parcelID uuid.UUID) (int64, error) {
	modified, err := s.parcelRepo.UpdateFields(ctx, parcelID, map[string]interface{}{
		"cashout_status":       model.CashoutStatusCashedOut,
		"cashout_requested_at": s.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("request cashout: %w", err)
	}
	return modified, nil
}

func (s *parcelService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.parcelRepo.Delete(ctx, id)
}
