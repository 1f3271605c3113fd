package technician

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"appliance-booking/logger"
	technicianModel "appliance-booking/models/technician"
	"appliance-booking/repository"
	"appliance-booking/types"
	technicianTypes "appliance-booking/types/technician"
	"appliance-booking/utils"
)

// TechnicianController handles technician registration and listing
type TechnicianController struct {
	Technicians repository.TechnicianRepository
}

func NewTechnicianController(technicians repository.TechnicianRepository) *TechnicianController {
	return &TechnicianController{Technicians: technicians}
}

// Store registers a new technician. Skills arrive as a comma separated list.
func (tc *TechnicianController) Store(c *fiber.Ctx) error {
	var req technicianTypes.TechnicianCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	t := technicianModel.Technician{
		Name:   req.Name,
		Phone:  req.Phone,
		Skills: utils.ParseSkills(req.Skills),
		Active: true,
	}

	if err := tc.Technicians.Create(c.Context(), &t); err != nil {
		var ve *repository.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: ve.Error(),
			})
		}
		logger.Error("Failed to create technician", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	logger.Success(fmt.Sprintf("Technician registered with ID: %s", t.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Technician registered successfully",
		Data:    t,
	})
}

// List returns all technicians, newest-first
func (tc *TechnicianController) List(c *fiber.Ctx) error {
	technicians, err := tc.Technicians.List(c.Context())
	if err != nil {
		logger.Error("Failed to list technicians", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Technicians fetched successfully",
		Data:    technicians,
	})
}
