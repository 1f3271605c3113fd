// Package assignment binds unassigned bookings to technicians.
package assignment

import (
	"context"
	"errors"

	bookingModel "appliance-booking/models/booking"
	"appliance-booking/repository"
	"appliance-booking/services/lifecycle"
)

// ErrInactiveTechnician is returned when the chosen technician is not
// active. Handlers translate this into an HTTP 422 response.
var ErrInactiveTechnician = errors.New("technician is inactive")

// ErrAlreadyAssigned is returned when the booking already holds a
// technician. Re-assignment is deliberately not supported; the snapshot
// taken at assignment time is immutable.
var ErrAlreadyAssigned = errors.New("booking is already assigned")

// Service matches bookings to technicians through the lifecycle engine.
type Service struct {
	bookings    repository.BookingRepository
	technicians repository.TechnicianRepository
	lifecycle   *lifecycle.Engine
}

func NewService(bookings repository.BookingRepository, technicians repository.TechnicianRepository, engine *lifecycle.Engine) *Service {
	return &Service{bookings: bookings, technicians: technicians, lifecycle: engine}
}

// Assign binds the technician to the booking, snapshots the technician's
// contact details onto it and transitions it to Assigned.
func (s *Service) Assign(ctx context.Context, bookingID, technicianID string) (*bookingModel.Booking, error) {
	t, err := s.technicians.GetByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, ErrInactiveTechnician
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.TechnicianID != nil {
		return nil, ErrAlreadyAssigned
	}

	b.TechnicianID = &t.ID
	b.TechnicianName = &t.Name
	b.TechnicianPhone = &t.Phone
	if err := s.lifecycle.Apply(ctx, b, bookingModel.BookingStatusAssigned, "Assigned to "+t.Name); err != nil {
		return nil, err
	}
	return b, nil
}

// ListUnassigned returns the admin queue: bookings with no technician and a
// status other than Cancelled, newest-first.
func (s *Service) ListUnassigned(ctx context.Context) ([]bookingModel.Booking, error) {
	return s.bookings.ListUnassigned(ctx)
}
