package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	technicianModel "appliance-booking/models/technician"
)

// TechnicianRepository is the technician side of the entity store.
type TechnicianRepository interface {
	// Create validates name and phone, assigns a fresh id and persists the
	// technician as active unless Active was set explicitly false.
	Create(ctx context.Context, t *technicianModel.Technician) error
	GetByID(ctx context.Context, id string) (*technicianModel.Technician, error)
	// List returns technicians newest-first.
	List(ctx context.Context) ([]technicianModel.Technician, error)
}

func prepareNewTechnician(t *technicianModel.Technician) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Phone = strings.TrimSpace(t.Phone)

	if t.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if t.Phone == "" {
		return NewValidationError("phone", "phone is required")
	}

	t.ID = uuid.NewString()
	return nil
}

// GormTechnicianRepository persists technicians through GORM/Postgres.
type GormTechnicianRepository struct {
	db *gorm.DB
}

func NewGormTechnicianRepository(db *gorm.DB) *GormTechnicianRepository {
	return &GormTechnicianRepository{db: db}
}

func (r *GormTechnicianRepository) Create(ctx context.Context, t *technicianModel.Technician) error {
	if err := prepareNewTechnician(t); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *GormTechnicianRepository) GetByID(ctx context.Context, id string) (*technicianModel.Technician, error) {
	var t technicianModel.Technician
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormTechnicianRepository) List(ctx context.Context) ([]technicianModel.Technician, error) {
	var out []technicianModel.Technician
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
