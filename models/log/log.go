package log

import (
	"time"
)

// Log represents an HTTP request/response log entry.
type Log struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method         string    `gorm:"type:varchar(10);not null" json:"method"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	ClientIP       string    `gorm:"type:varchar(45)" json:"client_ip"`
	RequestBody    string    `gorm:"type:text" json:"request_body"`
	ResponseBody   string    `gorm:"type:text" json:"response_body"`
	StatusCode     int       `gorm:"type:int" json:"status_code"`
	DurationMillis int64     `gorm:"column:duration_millis" json:"duration_millis"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
