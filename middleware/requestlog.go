package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"appliance-booking/logger"
	"appliance-booking/types"
)

// RequestLog captures every request/response pair and hands it to the async
// logger for persistence.
func RequestLog(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestBody := string(c.Body())

		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:         c.Method(),
			URL:            c.OriginalURL(),
			ClientIP:       c.IP(),
			RequestBody:    requestBody,
			ResponseBody:   string(c.Response().Body()),
			StatusCode:     c.Response().StatusCode(),
			DurationMillis: time.Since(start).Milliseconds(),
			CreatedAt:      start,
		})

		return err
	}
}
