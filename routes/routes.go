package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "appliance-booking/controllers/booking"
	serverController "appliance-booking/controllers/server"
	technicianController "appliance-booking/controllers/technician"
	"appliance-booking/httpServices/notify"
	"appliance-booking/logger"
	"appliance-booking/middleware"
	"appliance-booking/repository"
	"appliance-booking/services/assignment"
	"appliance-booking/services/lifecycle"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	bookings := repository.NewGormBookingRepository(db)
	technicians := repository.NewGormTechnicianRepository(db)
	customers := repository.NewGormCustomerRepository(db)

	var notifier lifecycle.Notifier
	if base := os.Getenv("NOTIFY_BASE_URL"); base != "" {
		notifier = notify.NewClient(base)
		logger.Info("SMS notifications enabled via " + base)
	}

	engine := lifecycle.NewEngine(bookings, notifier)
	assigner := assignment.NewService(bookings, technicians, engine)

	bookingCtrl := bookingController.NewBookingController(bookings, customers, engine, assigner)
	technicianCtrl := technicianController.NewTechnicianController(technicians)
	healthCtrl := serverController.NewHealthController(db)

	// Start the async request logger processing goroutine
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLog(asyncLogger))

	api := app.Group("/api")
	api.Get("/health", healthCtrl.Health)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking")

	// Customer
	bookingGroup.Post("/create", bookingCtrl.Store)

	// Admin
	bookingGroup.Get("/list", bookingCtrl.List)
	bookingGroup.Get("/unassigned", bookingCtrl.Unassigned)
	bookingGroup.Post("/:id/confirm", bookingCtrl.Confirm)
	bookingGroup.Post("/:id/assign", bookingCtrl.Assign)

	// Technician
	bookingGroup.Get("/technician/:id", bookingCtrl.ByTechnician)
	bookingGroup.Post("/:id/status", bookingCtrl.UpdateStatus)
	bookingGroup.Post("/:id/complete", bookingCtrl.Complete)

	bookingGroup.Get("/:id", bookingCtrl.Show)

	/*=============================================================================
	| Technician Routes
	===============================================================================*/
	technicianGroup := api.Group("/technician")
	technicianGroup.Post("/create", technicianCtrl.Store)
	technicianGroup.Get("/list", technicianCtrl.List)
}
