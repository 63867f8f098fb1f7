package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryStatus represents where a parcel sits in its forward-only lifecycle.
type DeliveryStatus string

const (
	DeliveryStatusPending           DeliveryStatus = "pending"
	DeliveryStatusRiderAssigned     DeliveryStatus = "rider_assigned"
	DeliveryStatusInTransit         DeliveryStatus = "in_transit"
	DeliveryStatusDelivered         DeliveryStatus = "delivered"
	DeliveryStatusDeliveredToCenter DeliveryStatus = "delivered_to_center"
)

// CashoutStatus represents whether a rider has requested cashout for a parcel.
type CashoutStatus string

const (
	CashoutStatusNone      CashoutStatus = "none"
	CashoutStatusCashedOut CashoutStatus = "cashed_out"
)

// deliveryRank orders statuses along the lifecycle. A transition is valid only
// if it does not move backwards; an equal-status repeat is allowed so that
// timestamp stamping stays idempotent.
var deliveryRank = map[DeliveryStatus]int{
	DeliveryStatusPending:           0,
	DeliveryStatusRiderAssigned:     1,
	DeliveryStatusInTransit:         2,
	DeliveryStatusDelivered:         3,
	DeliveryStatusDeliveredToCenter: 4,
}

// ValidDeliveryStatus reports whether s is a known delivery status.
func ValidDeliveryStatus(s DeliveryStatus) bool {
	_, ok := deliveryRank[s]
	return ok
}

// CanTransitionDelivery reports whether a parcel may move from one status to
// another. Only forward moves (or repeats) are permitted.
func CanTransitionDelivery(from, to DeliveryStatus) bool {
	fr, ok := deliveryRank[from]
	if !ok {
		return false
	}
	tr, ok := deliveryRank[to]
	if !ok {
		return false
	}
	return tr >= fr
}

// Parcel represents a delivery order tracked through a fixed forward lifecycle.
type Parcel struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TrackingID string    `json:"tracking_id" gorm:"size:64;uniqueIndex"`

	Type   string          `json:"type" gorm:"size:50"`
	Weight decimal.Decimal `json:"weight" gorm:"type:decimal(10,2)"`
	Cost   decimal.Decimal `json:"cost" gorm:"type:decimal(20,2)"`

	SenderName       string `json:"sender_name" gorm:"size:255"`
	SenderPhone      string `json:"sender_phone" gorm:"size:20"`
	SenderRegion     string `json:"sender_region" gorm:"size:100"`
	SenderDistrict   string `json:"sender_district" gorm:"size:100"`
	SenderAddress    string `json:"sender_address" gorm:"size:512"`
	ReceiverName     string `json:"receiver_name" gorm:"size:255"`
	ReceiverPhone    string `json:"receiver_phone" gorm:"size:20"`
	ReceiverRegion   string `json:"receiver_region" gorm:"size:100"`
	ReceiverDistrict string `json:"receiver_district" gorm:"size:100"`
	ReceiverAddress  string `json:"receiver_address" gorm:"size:512"`

	CreatedBy      string         `json:"created_by" gorm:"size:255;index"`
	DeliveryStatus DeliveryStatus `json:"delivery_status" gorm:"size:30;default:'pending';index"`
	IsPaid         bool           `json:"is_paid" gorm:"default:false;index"`
	PaymentMethod  string         `json:"payment_method" gorm:"size:50"`

	AssignedRiderID    *uuid.UUID `json:"assigned_rider_id,omitempty" gorm:"type:char(36);index"`
	AssignedRiderEmail string     `json:"assigned_rider_email,omitempty" gorm:"size:255;index"`
	AssignedRiderName  string     `json:"assigned_rider_name,omitempty" gorm:"size:255"`

	PickedAt    *time.Time `json:"picked_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	CashoutStatus      CashoutStatus `json:"cashout_status" gorm:"size:20;default:'none'"`
	CashoutRequestedAt *time.Time    `json:"cashout_requested_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID and tracking id before inserting the record.
func (p *Parcel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.TrackingID == "" {
		p.TrackingID = NewTrackingID(p.ID)
	}
	return nil
}

// NewTrackingID derives the customer-facing tracking id from a parcel id.
func NewTrackingID(id uuid.UUID) string {
	return fmt.Sprintf("PCL-%s", id.String()[:8])
}
