package booking

import (
	"time"
)

// BookingHistory is one audit entry on a booking. Rows are only ever
// inserted, together with the status change they describe.
type BookingHistory struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID string `gorm:"size:36;not null;index" json:"booking_id"`

	Status    BookingStatus `gorm:"type:varchar(20);not null" json:"status"`
	Text      string        `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the BookingHistory model
func (BookingHistory) TableName() string {
	return "booking_histories"
}
