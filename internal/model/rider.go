package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiderStatus represents a rider's application state.
type RiderStatus string

const (
	RiderStatusPending     RiderStatus = "pending"
	RiderStatusActive      RiderStatus = "active"
	RiderStatusCancelled   RiderStatus = "cancelled"
	RiderStatusDeactivated RiderStatus = "deactivated"
)

// RiderWorkStatus represents whether an active rider currently carries a parcel.
type RiderWorkStatus string

const (
	RiderWorkStatusIdle       RiderWorkStatus = "idle"
	RiderWorkStatusInDelivery RiderWorkStatus = "in_delivery"
)

// riderTransitions encodes the application state machine:
// pending -> active | cancelled, active -> deactivated.
// cancelled and deactivated are terminal.
var riderTransitions = map[RiderStatus][]RiderStatus{
	RiderStatusPending: {RiderStatusActive, RiderStatusCancelled},
	RiderStatusActive:  {RiderStatusDeactivated},
}

// CanTransitionRider reports whether a rider may move from one status to another.
func CanTransitionRider(from, to RiderStatus) bool {
	for _, next := range riderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Rider represents a delivery agent with an application/approval workflow.
type Rider struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Email      string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone      string          `json:"phone" gorm:"size:20"`
	Region     string          `json:"region" gorm:"size:100"`
	District   string          `json:"district" gorm:"size:100;index"`
	Status     RiderStatus     `json:"status" gorm:"size:20;default:'pending';index"`
	WorkStatus RiderWorkStatus `json:"work_status" gorm:"size:20;default:'idle'"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting the record.
func (r *Rider) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
