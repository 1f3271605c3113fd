package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"appliance-booking/constants"
	bookingModel "appliance-booking/models/booking"
)

// Text of the first audit entry recorded at creation time.
const bookingRequestedText = "Booking requested by customer"

// BookingRepository is the booking side of the entity store. Implementations
// must keep each write atomic: a failed operation leaves the store unchanged,
// and a transition plus its history entry become visible together.
type BookingRepository interface {
	// Create validates the submission, fills defaults, assigns a fresh id,
	// sets status Requested and seeds the first history entry.
	Create(ctx context.Context, b *bookingModel.Booking) error
	GetByID(ctx context.Context, id string) (*bookingModel.Booking, error)
	// List returns bookings newest-first. A non-empty query filters by
	// case-insensitive substring over name, phone, address and service type.
	List(ctx context.Context, query string) ([]bookingModel.Booking, error)
	// ListUnassigned returns bookings with no technician bound and a status
	// other than Cancelled, newest-first.
	ListUnassigned(ctx context.Context) ([]bookingModel.Booking, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]bookingModel.Booking, error)
	// UpdateWithHistory persists b's status, technician binding and amount,
	// guarded by a compare-and-swap on the expected current status, and
	// appends one history entry in the same transaction. Returns ErrConflict
	// when the booking changed underneath the caller.
	UpdateWithHistory(ctx context.Context, b *bookingModel.Booking, from bookingModel.BookingStatus, text string) error
}

// prepareNewBooking normalizes and validates a submission in place. It is
// shared by the GORM and in-memory stores so both enforce identical rules.
func prepareNewBooking(b *bookingModel.Booking) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Address = strings.TrimSpace(b.Address)

	if b.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if b.Phone == "" {
		return NewValidationError("phone", "phone is required")
	}
	if b.Address == "" {
		return NewValidationError("address", "address is required")
	}

	b.ServiceType = strings.TrimSpace(b.ServiceType)
	if b.ServiceType == "" {
		b.ServiceType = constants.DefaultServiceType
	} else if !constants.IsValidServiceType(b.ServiceType) {
		return NewValidationError("service_type", "unknown service type")
	}

	b.PaymentMode = strings.TrimSpace(b.PaymentMode)
	if b.PaymentMode == "" {
		b.PaymentMode = constants.DefaultPaymentMode
	} else if !constants.IsValidPaymentMode(b.PaymentMode) {
		return NewValidationError("payment_mode", "unknown payment mode")
	}

	if b.ScheduledDate.IsZero() {
		b.ScheduledDate = now.BeginningOfDay()
	}
	if strings.TrimSpace(b.ScheduledTime) == "" {
		b.ScheduledTime = constants.DefaultScheduledTime
	}

	b.ID = uuid.NewString()
	b.Status = bookingModel.BookingStatusRequested
	b.TechnicianID = nil
	b.TechnicianName = nil
	b.TechnicianPhone = nil
	b.Amount = nil
	b.History = nil
	return nil
}

// matchesQuery mirrors the SQL filter for the in-memory store.
func matchesQuery(b *bookingModel.Booking, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{b.Name, b.Phone, b.Address, b.ServiceType}, " "))
	return strings.Contains(haystack, strings.ToLower(query))
}

// GormBookingRepository persists bookings through GORM/Postgres.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, b *bookingModel.Booking) error {
	if err := prepareNewBooking(b); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		entry := bookingModel.BookingHistory{
			BookingID: b.ID,
			Status:    bookingModel.BookingStatusRequested,
			Text:      bookingRequestedText,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		b.History = append(b.History, entry)
		return nil
	})
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) List(ctx context.Context, query string) ([]bookingModel.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("created_at DESC, id DESC")

	query = strings.TrimSpace(query)
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"(name || ' ' || phone || ' ' || address || ' ' || service_type) ILIKE ?",
			pattern,
		)
	}

	var out []bookingModel.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormBookingRepository) ListUnassigned(ctx context.Context) ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := r.db.WithContext(ctx).
		Where("technician_id IS NULL AND status <> ?", bookingModel.BookingStatusCancelled).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormBookingRepository) ListByTechnician(ctx context.Context, technicianID string) ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("technician_id = ?", technicianID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormBookingRepository) UpdateWithHistory(ctx context.Context, b *bookingModel.Booking, from bookingModel.BookingStatus, text string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel.Booking{}).
			Where("id = ? AND status = ?", b.ID, from).
			Updates(map[string]interface{}{
				"status":           b.Status,
				"technician_id":    b.TechnicianID,
				"technician_name":  b.TechnicianName,
				"technician_phone": b.TechnicianPhone,
				"amount":           b.Amount,
				"updated_at":       time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the booking is gone or another writer won the race.
			var count int64
			if err := tx.Model(&bookingModel.Booking{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrConflict
		}

		entry := bookingModel.BookingHistory{
			BookingID: b.ID,
			Status:    b.Status,
			Text:      text,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		b.History = append(b.History, entry)
		return nil
	})
}
