package server

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingModel "appliance-booking/models/booking"
	technicianModel "appliance-booking/models/technician"
	"appliance-booking/types"
)

// HealthController reports service and database health
type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health pings the database and returns collection counts
func (hc *HealthController) Health(c *fiber.Ctx) error {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "Database unreachable",
		})
	}

	var bookings, technicians int64
	hc.DB.Model(&bookingModel.Booking{}).Count(&bookings)
	hc.DB.Model(&technicianModel.Technician{}).Count(&technicians)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "ok",
		Data: fiber.Map{
			"bookings":    bookings,
			"technicians": technicians,
		},
	})
}
