package booking

import (
	"time"
)

// Booking represents a customer service request and its lifecycle record.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string `gorm:"type:varchar(20);not null" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`

	ServiceType   string    `gorm:"type:varchar(100);not null" json:"service_type"`
	ScheduledDate time.Time `gorm:"type:date" json:"scheduled_date"`
	ScheduledTime string    `gorm:"type:varchar(5);not null" json:"scheduled_time"`
	PaymentMode   string    `gorm:"type:varchar(20);not null" json:"payment_mode"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`

	Status BookingStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	// Technician binding plus an immutable contact snapshot taken at
	// assignment time. The snapshot intentionally does not track later
	// technician edits.
	TechnicianID    *string `gorm:"size:36;index" json:"technician_id,omitempty"`
	TechnicianName  *string `gorm:"type:varchar(255)" json:"technician_name,omitempty"`
	TechnicianPhone *string `gorm:"type:varchar(20)" json:"technician_phone,omitempty"`

	// Final bill, set only on completion.
	Amount *float64 `gorm:"type:numeric(10,2)" json:"amount,omitempty"`

	// Append-only audit trail, oldest entry first.
	History []BookingHistory `gorm:"foreignKey:BookingID" json:"history,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
