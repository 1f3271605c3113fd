package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	bookingModel "appliance-booking/models/booking"
	customerModel "appliance-booking/models/customer"
	technicianModel "appliance-booking/models/technician"
)

// In-memory entity store. Production runs on the GORM store; this one backs
// tests and keeps the same validation, ordering and atomicity contract.

// MemoryBookingRepository holds bookings in a newest-first slice guarded by a
// mutex, which serializes writers the same way the SQL transaction does.
type MemoryBookingRepository struct {
	mu         sync.Mutex
	bookings   []*bookingModel.Booking
	nextHistoryID uint
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Create(_ context.Context, b *bookingModel.Booking) error {
	if err := prepareNewBooking(b); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.nextHistoryID++
	b.History = []bookingModel.BookingHistory{{
		ID:        r.nextHistoryID,
		BookingID: b.ID,
		Status:    bookingModel.BookingStatusRequested,
		Text:      bookingRequestedText,
		CreatedAt: now,
	}}

	stored := cloneBooking(b)
	r.bookings = append([]*bookingModel.Booking{stored}, r.bookings...)
	return nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id string) (*bookingModel.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.find(id)
	if b == nil {
		return nil, ErrNotFound
	}
	return cloneBooking(b), nil
}

func (r *MemoryBookingRepository) List(_ context.Context, query string) ([]bookingModel.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query = strings.TrimSpace(query)
	var out []bookingModel.Booking
	for _, b := range r.bookings {
		if matchesQuery(b, query) {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListUnassigned(_ context.Context) ([]bookingModel.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []bookingModel.Booking
	for _, b := range r.bookings {
		if b.TechnicianID == nil && b.Status != bookingModel.BookingStatusCancelled {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListByTechnician(_ context.Context, technicianID string) ([]bookingModel.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []bookingModel.Booking
	for _, b := range r.bookings {
		if b.TechnicianID != nil && *b.TechnicianID == technicianID {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) UpdateWithHistory(_ context.Context, b *bookingModel.Booking, from bookingModel.BookingStatus, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(b.ID)
	if stored == nil {
		return ErrNotFound
	}
	if stored.Status != from {
		return ErrConflict
	}

	now := time.Now()
	stored.Status = b.Status
	stored.TechnicianID = copyStringPtr(b.TechnicianID)
	stored.TechnicianName = copyStringPtr(b.TechnicianName)
	stored.TechnicianPhone = copyStringPtr(b.TechnicianPhone)
	stored.Amount = copyFloatPtr(b.Amount)
	stored.UpdatedAt = now

	r.nextHistoryID++
	entry := bookingModel.BookingHistory{
		ID:        r.nextHistoryID,
		BookingID: stored.ID,
		Status:    stored.Status,
		Text:      text,
		CreatedAt: now,
	}
	stored.History = append(stored.History, entry)

	*b = *cloneBooking(stored)
	return nil
}

func (r *MemoryBookingRepository) find(id string) *bookingModel.Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func cloneBooking(b *bookingModel.Booking) *bookingModel.Booking {
	c := *b
	c.TechnicianID = copyStringPtr(b.TechnicianID)
	c.TechnicianName = copyStringPtr(b.TechnicianName)
	c.TechnicianPhone = copyStringPtr(b.TechnicianPhone)
	c.Amount = copyFloatPtr(b.Amount)
	c.History = append([]bookingModel.BookingHistory(nil), b.History...)
	return &c
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyFloatPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// MemoryTechnicianRepository is the in-memory technician store.
type MemoryTechnicianRepository struct {
	mu          sync.Mutex
	technicians []*technicianModel.Technician
}

func NewMemoryTechnicianRepository() *MemoryTechnicianRepository {
	return &MemoryTechnicianRepository{}
}

func (r *MemoryTechnicianRepository) Create(_ context.Context, t *technicianModel.Technician) error {
	if err := prepareNewTechnician(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := *t
	stored.Skills = append(technicianModel.Skills(nil), t.Skills...)
	r.technicians = append([]*technicianModel.Technician{&stored}, r.technicians...)
	return nil
}

func (r *MemoryTechnicianRepository) GetByID(_ context.Context, id string) (*technicianModel.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.technicians {
		if t.ID == id {
			c := *t
			c.Skills = append(technicianModel.Skills(nil), t.Skills...)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryTechnicianRepository) List(_ context.Context) ([]technicianModel.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]technicianModel.Technician, 0, len(r.technicians))
	for _, t := range r.technicians {
		c := *t
		c.Skills = append(technicianModel.Skills(nil), t.Skills...)
		out = append(out, c)
	}
	return out, nil
}

// MemoryCustomerRepository appends submitted contacts to a slice.
type MemoryCustomerRepository struct {
	mu        sync.Mutex
	customers []customerModel.Customer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{}
}

func (r *MemoryCustomerRepository) Record(_ context.Context, name, phone, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append(r.customers, customerModel.Customer{
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now(),
	})
	return nil
}

// Size reports how many contacts have been recorded.
func (r *MemoryCustomerRepository) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.customers)
}
