package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidRange    = errors.New("invalid date range")
)

type PaymentUsecase interface {
	// Record collects a visit: the payment row and the appointment paid
	// flag commit together or not at all.
	Record(ctx context.Context, actorID int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	// Delete reverts a collection, clearing the appointment paid flag.
	Delete(ctx context.Context, actorID, paymentID int) error
	// DayCash renders the checkout screen for one clinic day: unpaid visits
	// with their configured price, collected payments and the day total.
	DayCash(ctx context.Context, date string) (*dto.DayCashResponse, error)
	Report(ctx context.Context, from, to string) (*dto.PaymentReportResponse, error)
}

type paymentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	availability    *service.AvailabilityService
	auditService    service.AuditService
	notifier        service.Notifier
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	availability *service.AvailabilityService,
	auditService service.AuditService,
	notifier service.Notifier,
) PaymentUsecase {
	return &paymentUsecase{
		db:              db,
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		availability:    availability,
		auditService:    auditService,
		notifier:        notifier,
	}
}

func (u *paymentUsecase) Record(ctx context.Context, actorID int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	reason := appointment.Reason
	if req.Reason != "" {
		reason = req.Reason
	}

	payment := &entity.Payment{
		AppointmentID: appointment.ID,
		Amount:        req.Amount,
		Method:        req.Method,
		PaidOn:        time.Now().Format(entity.DateLayout),
		Notes:         req.Notes,
		ReceiptCode:   uuid.New().String(),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.paymentRepo.Create(ctx, tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if err := u.appointmentRepo.MarkPaid(ctx, tx, appointment.ID, reason); err != nil {
		u.log.Warnf("Failed to mark appointment paid: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionPaymentCreate, map[string]interface{}{
		"appointment_id": appointment.ID,
		"amount":         payment.Amount,
		"method":         payment.Method,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	payment.Appointment = *appointment
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Delete(ctx context.Context, actorID, paymentID int) error {
	payment, err := u.paymentRepo.FindByID(ctx, u.db, paymentID)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.paymentRepo.Delete(ctx, tx, paymentID)
	if err != nil {
		u.log.Warnf("Failed to delete payment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPaymentNotFound
	}

	if err := u.appointmentRepo.RevertPaid(ctx, tx, payment.AppointmentID); err != nil {
		u.log.Warnf("Failed to revert paid flag: %+v", err)
		return err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionPaymentDelete, map[string]interface{}{
		"appointment_id": payment.AppointmentID,
		"amount":         payment.Amount,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.notifier.Notify("Pago eliminado, cita marcada como pendiente de cobro")

	return nil
}

func (u *paymentUsecase) DayCash(ctx context.Context, date string) (*dto.DayCashResponse, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, ErrBadDateFormat
	}

	settings, err := u.availability.Settings(ctx)
	if err != nil {
		u.log.Warnf("Failed to load settings: %+v", err)
		return nil, err
	}

	unpaid, err := u.appointmentRepo.FindUnpaidByDate(ctx, u.db, date)
	if err != nil {
		u.log.Warnf("Failed to list unpaid appointments: %+v", err)
		return nil, err
	}

	pending := make([]dto.PendingChargeResponse, len(unpaid))
	for i, appointment := range unpaid {
		pending[i] = dto.PendingChargeResponse{
			Appointment: converter.AppointmentToResponse(&appointment),
			Price:       settings.Prices[appointment.Reason],
		}
	}

	payments, err := u.paymentRepo.FindByAppointmentDate(ctx, u.db, date)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	var total float64
	for _, payment := range payments {
		total += payment.Amount
	}

	return &dto.DayCashResponse{
		Date:     date,
		Pending:  pending,
		Payments: converter.PaymentsToResponses(payments),
		Total:    total,
	}, nil
}

func (u *paymentUsecase) Report(ctx context.Context, from, to string) (*dto.PaymentReportResponse, error) {
	fromDay, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		return nil, ErrBadDateFormat
	}
	toDay, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		return nil, ErrBadDateFormat
	}
	if toDay.Before(fromDay) {
		return nil, ErrInvalidRange
	}

	payments, err := u.paymentRepo.FindByPaidRange(ctx, u.db, from, to)
	if err != nil {
		u.log.Warnf("Failed to load payment report: %+v", err)
		return nil, err
	}

	var total float64
	byMethod := make(map[string]float64)
	for _, payment := range payments {
		total += payment.Amount
		byMethod[payment.Method] += payment.Amount
	}

	return &dto.PaymentReportResponse{
		From:     from,
		To:       to,
		Payments: converter.PaymentsToResponses(payments),
		Total:    total,
		ByMethod: byMethod,
	}, nil
}
