package customer

import (
	"time"
)

// Customer is a write-only record of a submitted contact. Nothing reads it
// back; it exists as a log of who requested service.
type Customer struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string `gorm:"type:varchar(20);not null" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
