package logger

import (
	"log"

	"gorm.io/gorm"

	log_model "appliance-booking/models/log"
	"appliance-booking/types"
)

// AsyncLogger persists request logs to the database without blocking the
// request path. Entries flow through a buffered channel drained by
// ProcessLog, which runs on its own goroutine.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous request logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:         logEntry.Method,
			URL:            logEntry.URL,
			ClientIP:       logEntry.ClientIP,
			RequestBody:    logEntry.RequestBody,
			ResponseBody:   logEntry.ResponseBody,
			StatusCode:     logEntry.StatusCode,
			DurationMillis: logEntry.DurationMillis,
			CreatedAt:      logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert request log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Entries are dropped when the
// buffer is full rather than stalling a request.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
		log.Printf("Request log buffer full, dropping entry for %s %s", entry.Method, entry.URL)
	}
}
