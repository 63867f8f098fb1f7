package model

import "time"

// TrackingEvent is one entry of the append-only movement log for a parcel.
// Events are queried per tracking id, ordered by timestamp ascending.
type TrackingEvent struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TrackingID string    `json:"tracking_id" gorm:"size:64;index;not null"`
	ParcelID   string    `json:"parcel_id" gorm:"type:char(36);index"`
	Status     string    `json:"status" gorm:"size:50"`
	Message    string    `json:"message" gorm:"size:512"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
	UpdatedBy  string    `json:"updated_by" gorm:"size:255"`
}
