package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBadDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrSaturdayBlocked     = errors.New("no appointments can be scheduled on Saturdays")
	ErrSundayBlocked       = errors.New("no appointments can be scheduled on Sundays")
	ErrDateBlocked         = errors.New("the selected date is not available")
	ErrDateFull            = errors.New("the selected date is fully booked")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentPaid     = errors.New("a paid appointment cannot be moved")
)

// rejectionError maps an availability decision to its sentinel.
func rejectionError(reason service.RejectReason) error {
	switch reason {
	case service.ReasonSaturdayBlocked:
		return ErrSaturdayBlocked
	case service.ReasonSundayBlocked:
		return ErrSundayBlocked
	case service.ReasonDateBlocked:
		return ErrDateBlocked
	case service.ReasonDateFull:
		return ErrDateFull
	default:
		return ErrBadDateFormat
	}
}

type BookingUsecase interface {
	// CreatePublic books from the public form, enforcing every availability
	// rule with no overrides.
	CreatePublic(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingResponse, error)
	// CreateStaff books from the desk: capacity is bypassed and weekend
	// blackouts downgrade to a warning; manual blocks still reject.
	CreateStaff(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingResponse, error)
	ListByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error)
	Move(ctx context.Context, actorID, appointmentID int, req *dto.MoveAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, actorID, appointmentID int) error
	Availability(ctx context.Context) (*dto.AvailabilityResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	followupRepo    repository.FollowupRepository
	paymentRepo     repository.PaymentRepository
	availability    *service.AvailabilityService
	auditService    service.AuditService
	notifier        service.Notifier
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	followupRepo repository.FollowupRepository,
	paymentRepo repository.PaymentRepository,
	availability *service.AvailabilityService,
	auditService service.AuditService,
	notifier service.Notifier,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		followupRepo:    followupRepo,
		paymentRepo:     paymentRepo,
		availability:    availability,
		auditService:    auditService,
		notifier:        notifier,
	}
}

func (u *bookingUsecase) CreatePublic(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingResponse, error) {
	return u.create(ctx, req, false)
}

func (u *bookingUsecase) CreateStaff(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingResponse, error) {
	return u.create(ctx, req, true)
}

func (u *bookingUsecase) create(ctx context.Context, req *dto.CreateAppointmentRequest, staffOverride bool) (*dto.BookingResponse, error) {
	snapshot, err := u.availability.Snapshot(ctx, time.Now())
	if err != nil {
		u.log.Warnf("Failed to load availability snapshot: %+v", err)
		return nil, err
	}

	decision := snapshot.Validate(req.Date, staffOverride)
	if !decision.OK {
		return nil, rejectionError(decision.Reason)
	}

	order, err := u.appointmentRepo.CountForDate(ctx, u.db, req.Date)
	if err != nil {
		u.log.Warnf("Failed to count appointments for date: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientName:       req.PatientName,
		Phone:             req.Phone,
		Email:             req.Email,
		Date:              req.Date,
		Reason:            req.Reason,
		InsuranceNumber:   req.InsuranceNumber,
		InsuranceProvider: req.InsuranceProvider,
		QueueOrder:        int(order),
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.notifier.Notify(fmt.Sprintf("Nueva cita: %s - %s (%s)", appointment.PatientName, appointment.Date, appointment.Reason))

	return &dto.BookingResponse{
		Appointment: converter.AppointmentToResponse(appointment),
		Warning:     decision.Warning,
	}, nil
}

func (u *bookingUsecase) ListByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, ErrBadDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDate(ctx, u.db, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	ids := make([]int, len(appointments))
	for i, appointment := range appointments {
		ids[i] = appointment.ID
	}

	withFollowup, err := u.followupRepo.AppointmentIDsWithFollowup(ctx, u.db, ids)
	if err != nil {
		u.log.Warnf("Failed to load follow-up flags: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments, withFollowup), nil
}

func (u *bookingUsecase) Move(ctx context.Context, actorID, appointmentID int, req *dto.MoveAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// A collected visit stays on the day it was collected for.
	paid, err := u.paymentRepo.ExistsForAppointment(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check payments for appointment: %+v", err)
		return nil, err
	}
	if paid || appointment.Paid {
		return nil, ErrAppointmentPaid
	}

	snapshot, err := u.availability.Snapshot(ctx, time.Now())
	if err != nil {
		u.log.Warnf("Failed to load availability snapshot: %+v", err)
		return nil, err
	}

	decision := snapshot.Validate(req.Date, true)
	if !decision.OK {
		return nil, rejectionError(decision.Reason)
	}

	order, err := u.appointmentRepo.CountForDate(ctx, u.db, req.Date)
	if err != nil {
		u.log.Warnf("Failed to count appointments for date: %+v", err)
		return nil, err
	}

	oldDate := appointment.Date

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.UpdateDate(ctx, tx, appointmentID, req.Date, int(order)); err != nil {
		u.log.Warnf("Failed to move appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.RecordChange(ctx, tx, &actorID, entity.AuditActionAppointmentMove, appointmentID, oldDate, req.Date); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Date = req.Date
	appointment.QueueOrder = int(order)

	u.notifier.Notify(fmt.Sprintf("Cita movida: %s de %s a %s", appointment.PatientName, oldDate, req.Date))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) Delete(ctx context.Context, actorID, appointmentID int) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.Delete(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionAppointmentDelete, map[string]interface{}{
		"patient_name": appointment.PatientName,
		"date":         appointment.Date,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.notifier.Notify(fmt.Sprintf("Cita eliminada: %s - %s", appointment.PatientName, appointment.Date))

	return nil
}

func (u *bookingUsecase) Availability(ctx context.Context) (*dto.AvailabilityResponse, error) {
	snapshot, err := u.availability.Snapshot(ctx, time.Now())
	if err != nil {
		u.log.Warnf("Failed to load availability snapshot: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		UnavailableDates: snapshot.Unavailable(),
		BlockSaturdays:   snapshot.Settings.BlockSaturdays,
		BlockSundays:     snapshot.Settings.BlockSundays,
		Services:         converter.ServicesToResponses(snapshot.Settings),
	}, nil
}
