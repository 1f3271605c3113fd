package technician

import (
	"time"
)

// Technician represents a field worker eligible for booking assignment.
type Technician struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Phone string `gorm:"type:varchar(20);not null" json:"phone"`

	// Skills is informational only; assignment does not match it against
	// the booking's service type.
	Skills Skills `gorm:"type:text" json:"skills"`

	// Inactive technicians are excluded from assignment.
	Active bool `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
