package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"parcelhub/internal/errors"
	"parcelhub/internal/model"
)

func TestRiderService_Apply(t *testing.T) {
	mockRiderRepo := new(MockRiderRepository)
	mockRiderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Rider")).Return(nil)

	service := NewRiderService(mockRiderRepo, new(MockUserRepository), new(MockParcelRepository), nil)
	rider, err := service.Apply(context.Background(), &model.Rider{
		Name:  "Rider One",
		Email: "rider@example.com",
		// caller-supplied state is overwritten
		Status:     model.RiderStatusActive,
		WorkStatus: model.RiderWorkStatusInDelivery,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rider.ID)
	assert.Equal(t, model.RiderStatusPending, rider.Status)
	assert.Equal(t, model.RiderWorkStatusIdle, rider.WorkStatus)
	mockRiderRepo.AssertExpectations(t)
}

func TestRiderService_Approve(t *testing.T) {
	riderID := uuid.New()
	email := "rider@example.com"

	tests := []struct {
		name           string
		newStatus      model.RiderStatus
		setupMock      func(*MockRiderRepository, *MockUserRepository, *MockRoleCacheInvalidator)
		expectedResult *ApprovalResult
		expectedError  error
	}{
		{
			name:      "activation surfaces both writes",
			newStatus: model.RiderStatusActive,
			setupMock: func(r *MockRiderRepository, u *MockUserRepository, c *MockRoleCacheInvalidator) {
				r.On("FindByID", mock.Anything, riderID).Return(&model.Rider{ID: riderID, Status: model.RiderStatusPending}, nil)
				r.On("UpdateFields", mock.Anything, riderID, map[string]interface{}{"status": model.RiderStatusActive}).Return(int64(1), nil)
				u.On("UpdateRoleByEmail", mock.Anything, email, model.RoleRider).Return(int64(1), nil)
				c.On("InvalidateRole", mock.Anything, email).Return()
			},
			expectedResult: &ApprovalResult{RiderModified: 1, RoleModified: 1},
		},
		{
			name:      "role write failure reported without failing approval",
			newStatus: model.RiderStatusActive,
			setupMock: func(r *MockRiderRepository, u *MockUserRepository, c *MockRoleCacheInvalidator) {
				r.On("FindByID", mock.Anything, riderID).Return(&model.Rider{ID: riderID, Status: model.RiderStatusPending}, nil)
				r.On("UpdateFields", mock.Anything, riderID, mock.Anything).Return(int64(1), nil)
				u.On("UpdateRoleByEmail", mock.Anything, email, model.RoleRider).Return(int64(0), assert.AnError)
				c.On("InvalidateRole", mock.Anything, email).Return()
			},
			expectedResult: &ApprovalResult{RiderModified: 1, RoleModified: 0, RoleError: assert.AnError.Error()},
		},
		{
			name:      "cancellation performs no role write",
			newStatus: model.RiderStatusCancelled,
			setupMock: func(r *MockRiderRepository, u *MockUserRepository, c *MockRoleCacheInvalidator) {
				r.On("FindByID", mock.Anything, riderID).Return(&model.Rider{ID: riderID, Status: model.RiderStatusPending}, nil)
				r.On("UpdateFields", mock.Anything, riderID, map[string]interface{}{"status": model.RiderStatusCancelled}).Return(int64(1), nil)
			},
			expectedResult: &ApprovalResult{RiderModified: 1},
		},
		{
			name:      "already active cannot be re-approved",
			newStatus: model.RiderStatusActive,
			setupMock: func(r *MockRiderRepository, u *MockUserRepository, c *MockRoleCacheInvalidator) {
				r.On("FindByID", mock.Anything, riderID).Return(&model.Rider{ID: riderID, Status: model.RiderStatusActive}, nil)
			},
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:      "missing rider",
			newStatus: model.RiderStatusActive,
			setupMock: func(r *MockRiderRepository, u *MockUserRepository, c *MockRoleCacheInvalidator) {
				r.On("FindByID", mock.Anything, riderID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRiderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRiderRepo := new(MockRiderRepository)
			mockUserRepo := new(MockUserRepository)
			mockInvalidator := new(MockRoleCacheInvalidator)
			tt.setupMock(mockRiderRepo, mockUserRepo, mockInvalidator)

			service := NewRiderService(mockRiderRepo, mockUserRepo, new(MockParcelRepository), mockInvalidator)
			result, err := service.Approve(context.Background(), riderID, tt.newStatus, email)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
			mockRiderRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
			if tt.newStatus != model.RiderStatusActive {
				mockUserRepo.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRiderService_Transitions(t *testing.T) {
	riderID := uuid.New()

	tests := []struct {
		name          string
		current       model.RiderStatus
		op            func(RiderService) (int64, error)
		expectWrite   bool
		expectedError error
	}{
		{
			name:    "cancel pending application",
			current: model.RiderStatusPending,
			op: func(s RiderService) (int64, error) {
				return s.Cancel(context.Background(), riderID)
			},
			expectWrite: true,
		},
		{
			name:    "cannot cancel active rider",
			current: model.RiderStatusActive,
			op: func(s RiderService) (int64, error) {
				return s.Cancel(context.Background(), riderID)
			},
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:    "deactivate active rider",
			current: model.RiderStatusActive,
			op: func(s RiderService) (int64, error) {
				return s.Deactivate(context.Background(), riderID)
			},
			expectWrite: true,
		},
		{
			name:    "cannot deactivate pending application",
			current: model.RiderStatusPending,
			op: func(s RiderService) (int64, error) {
				return s.Deactivate(context.Background(), riderID)
			},
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			current: model.RiderStatusCancelled,
			op: func(s RiderService) (int64, error) {
				return s.Deactivate(context.Background(), riderID)
			},
			expectedError: errors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRiderRepo := new(MockRiderRepository)
			mockRiderRepo.On("FindByID", mock.Anything, riderID).Return(&model.Rider{ID: riderID, Status: tt.current}, nil)
			if tt.expectWrite {
				mockRiderRepo.On("UpdateFields", mock.Anything, riderID, mock.Anything).Return(int64(1), nil)
			}

			service := NewRiderService(mockRiderRepo, new(MockUserRepository), new(MockParcelRepository), nil)
			modified, err := tt.op(service)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Equal(t, int64(0), modified)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), modified)
			}
			mockRiderRepo.AssertExpectations(t)
		})
	}
}

func TestRiderService_DeliveryListings(t *testing.T) {
	email := "rider@example.com"

	t.Run("pending deliveries cover assigned and in transit", func(t *testing.T) {
		mockParcelRepo := new(MockParcelRepository)
		mockParcelRepo.On("ListByRider", mock.Anything, email,
			[]model.DeliveryStatus{model.DeliveryStatusRiderAssigned, model.DeliveryStatusInTransit}).
			Return([]model.Parcel{{TrackingID: "PCL-aaaa"}}, nil)

		service := NewRiderService(new(MockRiderRepository), new(MockUserRepository), mockParcelRepo, nil)
		parcels, err := service.ListPendingDeliveries(context.Background(), email)

		assert.NoError(t, err)
		assert.Len(t, parcels, 1)
		mockParcelRepo.AssertExpectations(t)
	})

	t.Run("completed deliveries cover delivered and delivered to center", func(t *testing.T) {
		mockParcelRepo := new(MockParcelRepository)
		mockParcelRepo.On("ListByRider", mock.Anything, email,
			[]model.DeliveryStatus{model.DeliveryStatusDelivered, model.DeliveryStatusDeliveredToCenter}).
			Return([]model.Parcel{}, nil)

		service := NewRiderService(new(MockRiderRepository), new(MockUserRepository), mockParcelRepo, nil)
		parcels, err := service.ListCompletedDeliveries(context.Background(), email)

		assert.NoError(t, err)
		assert.Empty(t, parcels)
		mockParcelRepo.AssertExpectations(t)
	})
}
