package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parcelhub/internal/errors"
	"parcelhub/internal/gateway"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

// PaymentRecord carries the outcome of RecordPayment: the appended ledger row
// plus how many parcel rows the paid-flag write touched. ParcelModified is 0
// when the referenced parcel does not exist; the ledger row is written anyway.
type PaymentRecord struct {
	Payment        *model.Payment `json:"payment"`
	ParcelModified int64          `json:"parcel_modified"`
}

// PaymentService records payments against parcels and talks to the external
// payment-intent gateway. RecordPayment performs two independent writes with
// no compensation on partial failure (best effort, non-transactional).
type PaymentService interface {
	RecordPayment(ctx context.Context, parcelID uuid.UUID, email string, amount decimal.Decimal, method, transactionID string) (*PaymentRecord, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	parcelRepo  repository.ParcelRepository
	intents     gateway.IntentCreator
	now         func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	parcelRepo repository.ParcelRepository,
	intents gateway.IntentCreator,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		parcelRepo:  parcelRepo,
		intents:     intents,
		now:         time.Now,
	}
}

// RecordPayment marks the parcel paid and appends a ledger row with a
// server-assigned timestamp. The ledger row is created even when the parcel
// id does not exist; callers see that through ParcelModified.
func (s *paymentService) RecordPayment(ctx context.Context, parcelID uuid.UUID, email string, amount decimal.Decimal, method, transactionID string) (*PaymentRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	parcelModified, err := s.parcelRepo.UpdateFields(ctx, parcelID, map[string]interface{}{
		"is_paid":        true,
		"payment_method": method,
	})
	if err != nil {
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}

	payment := &model.Payment{
		ParcelID:      parcelID.String(),
		Email:         email,
		Amount:        amount,
		PaymentMethod: method,
		TransactionID: transactionID,
		PaidAt:        s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("append payment: %w", err)
	}

	return &PaymentRecord{Payment: payment, ParcelModified: parcelModified}, nil
}

func (s *paymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.ListByEmail(ctx, email)
}

// CreateIntent delegates to the external gateway and returns its intent,
// including the client secret the frontend completes the payment with.
func (s *paymentService) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	return s.intents.Create(ctx, amount, currency)
}
