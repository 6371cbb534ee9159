package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Payment, error)
	// FindByAppointmentDate returns payments whose appointment falls on the
	// given clinic date, newest first.
	FindByAppointmentDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Payment, error)
	FindByPaidRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Payment, error)
	ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
