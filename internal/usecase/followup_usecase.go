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
	ErrFollowupExists       = errors.New("appointment already has a follow-up outcome")
	ErrFollowupDateRequired = errors.New("a date is required when booking a follow-up appointment")
	ErrDuplicateSameDay     = errors.New("patient already has an appointment on that date")
)

type FollowupUsecase interface {
	// Record stores the visit outcome. When a new appointment is requested
	// it is booked as a copy of the original on the given date, with the
	// desk's override rules and a same-day duplicate check.
	Record(ctx context.Context, actorID int, req *dto.FollowupRequest) (*dto.BookingResponse, error)
}

type followupUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	followupRepo    repository.FollowupRepository
	appointmentRepo repository.AppointmentRepository
	availability    *service.AvailabilityService
	notifier        service.Notifier
}

func NewFollowupUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	followupRepo repository.FollowupRepository,
	appointmentRepo repository.AppointmentRepository,
	availability *service.AvailabilityService,
	notifier service.Notifier,
) FollowupUsecase {
	return &followupUsecase{
		db:              db,
		log:             log,
		followupRepo:    followupRepo,
		appointmentRepo: appointmentRepo,
		availability:    availability,
		notifier:        notifier,
	}
}

func (u *followupUsecase) Record(ctx context.Context, actorID int, req *dto.FollowupRequest) (*dto.BookingResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	exists, err := u.followupRepo.ExistsForAppointment(ctx, u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check follow-up: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrFollowupExists
	}

	if !req.NeedsNewAppointment {
		followup := &entity.Followup{
			AppointmentID:       appointment.ID,
			NoAppointmentReason: req.NoAppointmentReason,
		}
		if err := u.followupRepo.Create(ctx, u.db, followup); err != nil {
			u.log.Warnf("Failed to record follow-up: %+v", err)
			return nil, err
		}
		return &dto.BookingResponse{}, nil
	}

	if req.NewDate == "" {
		return nil, ErrFollowupDateRequired
	}

	snapshot, err := u.availability.Snapshot(ctx, time.Now())
	if err != nil {
		u.log.Warnf("Failed to load availability snapshot: %+v", err)
		return nil, err
	}

	decision := snapshot.Validate(req.NewDate, true)
	if !decision.OK {
		return nil, rejectionError(decision.Reason)
	}

	duplicate, err := u.appointmentRepo.FindByPatientAndDate(ctx, u.db, appointment.PatientName, req.NewDate)
	if err != nil {
		u.log.Warnf("Failed to check duplicate appointment: %+v", err)
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrDuplicateSameDay
	}

	order, err := u.appointmentRepo.CountForDate(ctx, u.db, req.NewDate)
	if err != nil {
		u.log.Warnf("Failed to count appointments for date: %+v", err)
		return nil, err
	}

	next := &entity.Appointment{
		PatientName:       appointment.PatientName,
		Phone:             appointment.Phone,
		Email:             appointment.Email,
		Date:              req.NewDate,
		Reason:            appointment.Reason,
		InsuranceNumber:   appointment.InsuranceNumber,
		InsuranceProvider: appointment.InsuranceProvider,
		QueueOrder:        int(order),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(ctx, tx, next); err != nil {
		u.log.Warnf("Failed to create follow-up appointment: %+v", err)
		return nil, err
	}

	followup := &entity.Followup{
		AppointmentID:       appointment.ID,
		NeedsNewAppointment: true,
	}
	if err := u.followupRepo.Create(ctx, tx, followup); err != nil {
		u.log.Warnf("Failed to record follow-up: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.notifier.Notify(fmt.Sprintf("Cita de seguimiento: %s - %s", next.PatientName, next.Date))

	return &dto.BookingResponse{
		Appointment: converter.AppointmentToResponse(next),
		Warning:     decision.Warning,
	}, nil
}
