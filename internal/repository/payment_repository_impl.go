package repository

import (
	"context"
	"errors"

	"clinic-frontdesk/internal/domain/entity"
	domainRepo "clinic-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.WithContext(ctx).Preload("Appointment").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByAppointmentDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.WithContext(ctx).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Where("appointments.date = ?", date).
		Preload("Appointment").
		Order("payments.id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByPaidRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.WithContext(ctx).
		Where("paid_on >= ? AND paid_on <= ?", from, to).
		Preload("Appointment").
		Order("paid_on DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Payment{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *paymentRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Payment{})
	return result.RowsAffected, result.Error
}
