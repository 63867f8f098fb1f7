package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"parcelhub/internal/gateway"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

// MockParcelRepository is a mock implementation of ParcelRepository.
type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Create(ctx context.Context, parcel *model.Parcel) error {
	args := m.Called(ctx, parcel)
	return args.Error(0)
}

func (m *MockParcelRepository) List(ctx context.Context, filter repository.ParcelFilter) ([]model.Parcel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ListByRider(ctx context.Context, riderEmail string, statuses []model.DeliveryStatus) ([]model.Parcel, error) {
	args := m.Called(ctx, riderEmail, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) UpdateFieldsInStatus(ctx context.Context, id uuid.UUID, statuses []model.DeliveryStatus, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, statuses, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockRiderRepository is a mock implementation of RiderRepository.
type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) Create(ctx context.Context, rider *model.Rider) error {
	args := m.Called(ctx, rider)
	return args.Error(0)
}

func (m *MockRiderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rider), args.Error(1)
}

func (m *MockRiderRepository) ListByStatus(ctx context.Context, status model.RiderStatus, district string) ([]model.Rider, error) {
	args := m.Called(ctx, status, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rider), args.Error(1)
}

func (m *MockRiderRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRoleByID(ctx context.Context, id uint, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (int64, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

// MockTrackingRepository is a mock implementation of TrackingRepository.
type MockTrackingRepository struct {
	mock.Mock
}

func (m *MockTrackingRepository) Create(ctx context.Context, event *model.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingRepository) ListByTrackingID(ctx context.Context, trackingID string) ([]model.TrackingEvent, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackingEvent), args.Error(1)
}

// MockIntentCreator is a mock implementation of gateway.IntentCreator.
type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) Create(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}

// MockRoleCacheInvalidator is a mock implementation of RoleCacheInvalidator.
type MockRoleCacheInvalidator struct {
	mock.Mock
}

func (m *MockRoleCacheInvalidator) InvalidateRole(ctx context.Context, email string) {
	m.Called(ctx, email)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
