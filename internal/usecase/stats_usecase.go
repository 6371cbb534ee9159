package usecase

import (
	"context"
	"time"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	// Appointments aggregates booking volume over a closed date range by
	// visit reason, month and weekday.
	Appointments(ctx context.Context, from, to string) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) StatsUsecase {
	return &statsUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *statsUsecase) Appointments(ctx context.Context, from, to string) (*dto.StatsResponse, error) {
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

	appointments, err := u.appointmentRepo.FindByDateRange(ctx, u.db, from, to)
	if err != nil {
		u.log.Warnf("Failed to load appointments for stats: %+v", err)
		return nil, err
	}

	stats := &dto.StatsResponse{
		From:      from,
		To:        to,
		Total:     len(appointments),
		ByReason:  make(map[string]int),
		ByMonth:   make(map[string]int),
		ByWeekday: make(map[string]int),
	}

	for _, appointment := range appointments {
		stats.ByReason[appointment.Reason]++

		day, err := time.Parse(entity.DateLayout, appointment.Date)
		if err != nil {
			continue
		}
		stats.ByMonth[day.Format("2006-01")]++

		name := entity.WeekdayName(day.Weekday())
		if name == "" {
			name = "domingo"
		}
		stats.ByWeekday[name]++
	}

	return stats, nil
}
