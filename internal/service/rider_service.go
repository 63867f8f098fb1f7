package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcelhub/internal/errors"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

// ApprovalResult carries the outcome of both writes performed by Approve.
// The rider status write and the user role write are independent and
// non-transactional; neither outcome is hidden from the caller.
type ApprovalResult struct {
	RiderModified int64  `json:"rider_modified"`
	RoleModified  int64  `json:"role_modified"`
	RoleError     string `json:"role_error,omitempty"`
}

// RiderService owns the rider application workflow:
// pending -> active | cancelled, active -> deactivated.
// Activating a rider grants the "rider" role on the linked user.
type RiderService interface {
	Apply(ctx context.Context, rider *model.Rider) (*model.Rider, error)
	ListPending(ctx context.Context) ([]model.Rider, error)
	ListActive(ctx context.Context, district string) ([]model.Rider, error)
	ListPendingDeliveries(ctx context.Context, riderEmail string) ([]model.Parcel, error)
	ListCompletedDeliveries(ctx context.Context, riderEmail string) ([]model.Parcel, error)
	Approve(ctx context.Context, riderID uuid.UUID, newStatus model.RiderStatus, email string) (*ApprovalResult, error)
	Cancel(ctx context.Context, riderID uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, riderID uuid.UUID) (int64, error)
}

// RoleCacheInvalidator drops a cached role lookup after a role mutation.
type RoleCacheInvalidator interface {
	InvalidateRole(ctx context.Context, email string)
}

type riderService struct {
	riderRepo  repository.RiderRepository
	userRepo   repository.UserRepository
	parcelRepo repository.ParcelRepository
	roleCache  RoleCacheInvalidator
}

// NewRiderService creates a new rider service.
func NewRiderService(
	riderRepo repository.RiderRepository,
	userRepo repository.UserRepository,
	parcelRepo repository.ParcelRepository,
	roleCache RoleCacheInvalidator,
) RiderService {
	return &riderService{
		riderRepo:  riderRepo,
		userRepo:   userRepo,
		parcelRepo: parcelRepo,
		roleCache:  roleCache,
	}
}

// Apply inserts a rider application in its initial state.
func (s *riderService) Apply(ctx context.Context, rider *model.Rider) (*model.Rider, error) {
	rider.ID = uuid.New()
	rider.Status = model.RiderStatusPending
	rider.WorkStatus = model.RiderWorkStatusIdle

	if err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, fmt.Errorf("create rider application: %w", err)
	}
	return rider, nil
}

func (s *riderService) ListPending(ctx context.Context) ([]model.Rider, error) {
	return s.riderRepo.ListByStatus(ctx, model.RiderStatusPending, "")
}

func (s *riderService) ListActive(ctx context.Context, district string) ([]model.Rider, error) {
	return s.riderRepo.ListByStatus(ctx, model.RiderStatusActive, district)
}

func (s *riderService) ListPendingDeliveries(ctx context.Context, riderEmail string) ([]model.Parcel, error) {
	return s.parcelRepo.ListByRider(ctx, riderEmail, []model.DeliveryStatus{
		model.DeliveryStatusRiderAssigned,
		model.DeliveryStatusInTransit,
	})
}

func (s *riderService) ListCompletedDeliveries(ctx context.Context, riderEmail string) ([]model.Parcel, error) {
	return s.parcelRepo.ListByRider(ctx, riderEmail, []model.DeliveryStatus{
		model.DeliveryStatusDelivered,
		model.DeliveryStatusDeliveredToCenter,
	})
}

// Approve sets the rider status and, when activating, grants the "rider" role
// on the user record linked by email. The two writes are independent; the
// result reports both outcomes so a role-write failure is never swallowed.
func (s *riderService) Approve(ctx context.Context, riderID uuid.UUID, newStatus model.RiderStatus, email string) (*ApprovalResult, error) {
	rider, err := s.findRider(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransitionRider(rider.Status, newStatus) {
		return nil, errors.ErrInvalidTransition
	}

	modified, err := s.riderRepo.UpdateFields(ctx, riderID, map[string]interface{}{
		"status": newStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("update rider status: %w", err)
	}

	result := &ApprovalResult{RiderModified: modified}
	if newStatus == model.RiderStatusActive {
		roleModified, roleErr := s.userRepo.UpdateRoleByEmail(ctx, email, model.RoleRider)
		result.RoleModified = roleModified
		if roleErr != nil {
			result.RoleError = roleErr.Error()
		}
		if s.roleCache != nil {
			s.roleCache.InvalidateRole(ctx, email)
		}
	}
	return result, nil
}

// Cancel rejects a pending application.
func (s *riderService) Cancel(ctx context.Context, riderID uuid.UUID) (int64, error) {
	return s.transition(ctx, riderID, model.RiderStatusCancelled)
}

// Deactivate retires an active rider.
func (s *riderService) Deactivate(ctx context.Context, riderID uuid.UUID) (int64, error) {
	return s.transition(ctx, riderID, model.RiderStatusDeactivated)
}

func (s *riderService) transition(ctx context.Context, riderID uuid.UUID, newStatus model.RiderStatus) (int64, error) {
	rider, err := s.findRider(ctx, riderID)
	if err != nil {
		return 0, err
	}
	if !model.CanTransitionRider(rider.Status, newStatus) {
		return 0, errors.ErrInvalidTransition
	}

	modified, err := s.riderRepo.UpdateFields(ctx, riderID, map[string]interface{}{
		"status": newStatus,
	})
	if err != nil {
		return 0, fmt.Errorf("update rider status: %w", err)
	}
	return modified, nil
}

func (s *riderService) findRider(ctx context.Context, riderID uuid.UUID) (*model.Rider, error) {
	rider, err := s.riderRepo.FindByID(ctx, riderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRiderNotFound
		}
		return nil, err
	}
	return rider, nil
}
