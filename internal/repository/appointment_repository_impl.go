package repository

import (
	"context"
	"errors"

	"clinic-frontdesk/internal/domain/entity"
	domainRepo "clinic-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("date = ?", date).
		Order("queue_order ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUnpaidByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("date = ? AND paid = ?", date, false).
		Order("queue_order ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDateRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, queue_order ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientAndDate(ctx context.Context, db *gorm.DB, patientName, date string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Where("patient_name = ? AND date = ?", patientName, date).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountByDate(ctx context.Context, db *gorm.DB, from string) (map[string]int, error) {
	type dateCount struct {
		Date  string
		Total int
	}
	var rows []dateCount
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("date, COUNT(*) as total").
		Where("date >= ?", from).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Date] = row.Total
	}
	return counts, nil
}

func (r *appointmentRepository) CountForDate(ctx context.Context, db *gorm.DB, date string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) UpdateDate(ctx context.Context, db *gorm.DB, id int, date string, queueOrder int) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"date": date, "queue_order": queueOrder}).Error
}

func (r *appointmentRepository) UpdateQueueOrder(ctx context.Context, db *gorm.DB, id int, queueOrder int) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("queue_order", queueOrder).Error
}

func (r *appointmentRepository) MarkCalled(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("called", true).Error
}

func (r *appointmentRepository) MarkPaid(ctx context.Context, db *gorm.DB, id int, reason string) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"paid": true, "reason": reason}).Error
}

func (r *appointmentRepository) RevertPaid(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("paid", false).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
