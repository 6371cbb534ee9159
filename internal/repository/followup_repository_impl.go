package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"
	domainRepo "clinic-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type followupRepository struct{}

func NewFollowupRepository() domainRepo.FollowupRepository {
	return &followupRepository{}
}

func (r *followupRepository) Create(ctx context.Context, db *gorm.DB, followup *entity.Followup) error {
	return db.WithContext(ctx).Create(followup).Error
}

func (r *followupRepository) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Followup{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followupRepository) AppointmentIDsWithFollowup(ctx context.Context, db *gorm.DB, appointmentIDs []int) (map[int]bool, error) {
	result := make(map[int]bool, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return result, nil
	}

	var ids []int
	err := db.WithContext(ctx).Model(&entity.Followup{}).
		Where("appointment_id IN ?", appointmentIDs).
		Pluck("appointment_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
