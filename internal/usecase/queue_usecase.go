package usecase

import (
	"context"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type QueueUsecase interface {
	// Reorder assigns each appointment its position in the submitted list.
	// Updates are row by row; a mid-list failure leaves earlier rows at
	// their new position, and the stable date+id read order keeps the queue
	// renderable either way.
	Reorder(ctx context.Context, req *dto.ReorderRequest) error
	// CallPatient marks the appointment called, then announces the name to
	// the waiting-room display. The durable write comes first so a display
	// outage never loses the called state.
	CallPatient(ctx context.Context, actorID, appointmentID int) (*dto.AppointmentResponse, error)
}

type queueUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	announcer       *service.Announcer
	auditService    service.AuditService
}

func NewQueueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	announcer *service.Announcer,
	auditService service.AuditService,
) QueueUsecase {
	return &queueUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		announcer:       announcer,
		auditService:    auditService,
	}
}

func (u *queueUsecase) Reorder(ctx context.Context, req *dto.ReorderRequest) error {
	for index, id := range req.AppointmentIDs {
		if err := u.appointmentRepo.UpdateQueueOrder(ctx, u.db, id, index); err != nil {
			u.log.Warnf("Failed to reorder appointment %d: %+v", id, err)
			return err
		}
	}
	return nil
}

func (u *queueUsecase) CallPatient(ctx context.Context, actorID, appointmentID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.MarkCalled(ctx, tx, appointmentID); err != nil {
		u.log.Warnf("Failed to mark appointment called: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionAppointmentCall, map[string]interface{}{
		"patient_name": appointment.PatientName,
		"date":         appointment.Date,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.announcer.Announce(appointment.PatientName)

	appointment.Called = true
	return converter.AppointmentToResponse(appointment), nil
}
