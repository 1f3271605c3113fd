package booking

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"appliance-booking/logger"
	bookingModel "appliance-booking/models/booking"
	"appliance-booking/repository"
	"appliance-booking/services/assignment"
	"appliance-booking/services/lifecycle"
	"appliance-booking/types"
	bookingTypes "appliance-booking/types/booking"
	"appliance-booking/utils"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Bookings   repository.BookingRepository
	Customers  repository.CustomerRepository
	Lifecycle  *lifecycle.Engine
	Assignment *assignment.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(bookings repository.BookingRepository, customers repository.CustomerRepository, engine *lifecycle.Engine, assigner *assignment.Service) *BookingController {
	return &BookingController{
		Bookings:   bookings,
		Customers:  customers,
		Lifecycle:  engine,
		Assignment: assigner,
	}
}

// Store creates a new booking from a customer submission
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	scheduledDate, err := utils.ParseScheduledDate(req.ScheduledDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid scheduled date",
		})
	}

	b := bookingModel.Booking{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		ServiceType:   req.ServiceType,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
		PaymentMode:   req.PaymentMode,
		Notes:         req.Notes,
	}

	if err := bc.Bookings.Create(c.Context(), &b); err != nil {
		return bc.errorResponse(c, err)
	}

	// Customers is a write-only contact log; a failed insert never fails
	// the booking.
	if err := bc.Customers.Record(c.Context(), b.Name, b.Phone, b.Address); err != nil {
		logger.Error("Failed to record customer contact", err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %s", b.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    b,
	})
}

// List returns all bookings, optionally filtered by the query parameter.
// Matching is a case-insensitive substring search over name, phone, address
// and service type.
func (bc *BookingController) List(c *fiber.Ctx) error {
	bookings, err := bc.Bookings.List(c.Context(), c.Query("query"))
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookings,
	})
}

// Show returns a single booking with its history
func (bc *BookingController) Show(c *fiber.Ctx) error {
	b, err := bc.Bookings.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking fetched successfully",
		Data:    b,
	})
}

// Unassigned returns the admin queue of bookings awaiting assignment
func (bc *BookingController) Unassigned(c *fiber.Ctx) error {
	bookings, err := bc.Assignment.ListUnassigned(c.Context())
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Unassigned bookings fetched successfully",
		Data:    bookings,
	})
}

// ByTechnician returns the bookings assigned to one technician
func (bc *BookingController) ByTechnician(c *fiber.Ctx) error {
	bookings, err := bc.Bookings.ListByTechnician(c.Context(), c.Params("id"))
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Technician bookings fetched successfully",
		Data:    bookings,
	})
}

// Confirm moves a Requested booking to Confirmed
func (bc *BookingController) Confirm(c *fiber.Ctx) error {
	b, err := bc.Lifecycle.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking confirmed",
		Data:    b,
	})
}

// Assign binds a technician to a booking
func (bc *BookingController) Assign(c *fiber.Ctx) error {
	var req bookingTypes.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.TechnicianID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "technician_id is required",
		})
	}

	b, err := bc.Assignment.Assign(c.Context(), c.Params("id"), req.TechnicianID)
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking assigned",
		Data:    b,
	})
}

// UpdateStatus applies a generic status transition (On The Way, Started,
// Cancelled, or Confirmed)
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	var req bookingTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	b, err := bc.Lifecycle.Transition(c.Context(), c.Params("id"), bookingModel.BookingStatus(req.Status))
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated",
		Data:    b,
	})
}

// Complete closes a started job with its final bill
func (bc *BookingController) Complete(c *fiber.Ctx) error {
	var req bookingTypes.CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	b, err := bc.Lifecycle.Complete(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		return bc.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking completed",
		Data:    b,
	})
}

// errorResponse translates domain errors into HTTP responses. Failed
// operations leave the store unchanged, so every error is safe to surface
// directly to the caller.
func (bc *BookingController) errorResponse(c *fiber.Ctx, err error) error {
	var ve *repository.ValidationError
	var ite *lifecycle.InvalidTransitionError

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: ve.Error(),
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking or technician not found",
		})
	case errors.As(err, &ite):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: ite.Error(),
		})
	case errors.Is(err, repository.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Booking changed concurrently, please retry",
		})
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Booking is already assigned",
		})
	case errors.Is(err, assignment.ErrInactiveTechnician):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Technician is inactive",
		})
	default:
		logger.Error("Internal error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
