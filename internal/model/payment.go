package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is one row of the append-only payment ledger. Rows are never
// updated or deleted after insertion. ParcelID is intentionally not a foreign
// key: a payment is recorded even when the referenced parcel no longer exists.
type Payment struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ParcelID      string          `json:"parcel_id" gorm:"type:char(36);index"`
	Email         string          `json:"email" gorm:"size:255;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	TransactionID string          `json:"transaction_id" gorm:"size:255;uniqueIndex"`
	PaidAt        time.Time       `json:"paid_at" gorm:"index"`
}

// BeforeCreate sets the UUID before inserting the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
