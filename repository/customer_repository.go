package repository

import (
	"context"

	"gorm.io/gorm"

	customerModel "appliance-booking/models/customer"
)

// CustomerRepository records submitted customer contacts. The collection is
// write-only; no operation reads it back.
type CustomerRepository interface {
	Record(ctx context.Context, name, phone, address string) error
}

// GormCustomerRepository persists customer records through GORM/Postgres.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Record(ctx context.Context, name, phone, address string) error {
	c := customerModel.Customer{Name: name, Phone: phone, Address: address}
	return r.db.WithContext(ctx).Create(&c).Error
}
