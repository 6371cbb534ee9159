package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type FollowupRepository interface {
	Create(ctx context.Context, db *gorm.DB, followup *entity.Followup) error
	ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error)
	// AppointmentIDsWithFollowup filters the given ids down to those that
	// already have a recorded follow-up outcome.
	AppointmentIDsWithFollowup(ctx context.Context, db *gorm.DB, appointmentIDs []int) (map[int]bool, error)
}
