package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	// FindByDate returns the appointments for one date ordered by queue
	// position, ties broken by id so a partially applied reorder still
	// yields a stable sequence.
	FindByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error)
	FindUnpaidByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error)
	FindByDateRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Appointment, error)
	// FindByPatientAndDate is used to reject booking the same patient twice
	// on one day from the follow-up flow.
	FindByPatientAndDate(ctx context.Context, db *gorm.DB, patientName, date string) (*entity.Appointment, error)
	// CountByDate returns booked counts grouped by date for dates >= from.
	CountByDate(ctx context.Context, db *gorm.DB, from string) (map[string]int, error)
	CountForDate(ctx context.Context, db *gorm.DB, date string) (int64, error)
	UpdateDate(ctx context.Context, db *gorm.DB, id int, date string, queueOrder int) error
	UpdateQueueOrder(ctx context.Context, db *gorm.DB, id int, queueOrder int) error
	MarkCalled(ctx context.Context, db *gorm.DB, id int) error
	// MarkPaid sets the paid flag and rewrites the visit reason, which the
	// checkout screen may correct while collecting.
	MarkPaid(ctx context.Context, db *gorm.DB, id int, reason string) error
	RevertPaid(ctx context.Context, db *gorm.DB, id int) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
