package usecase

import (
	"context"
	"testing"

	"clinic-frontdesk/internal/domain/entity"
)

func TestStatsAggregation(t *testing.T) {
	appointmentRepo := newFakeAppointmentRepo()
	appointmentRepo.appointments[1] = &entity.Appointment{ID: 1, Date: "2026-03-02", Reason: entity.ServiceGynecological} // Monday
	appointmentRepo.appointments[2] = &entity.Appointment{ID: 2, Date: "2026-03-02", Reason: entity.ServiceBreast}
	appointmentRepo.appointments[3] = &entity.Appointment{ID: 3, Date: "2026-04-07", Reason: entity.ServiceGynecological} // Tuesday

	uc := NewStatsUsecase(nil, quietLogger(), appointmentRepo)

	stats, err := uc.Appointments(context.Background(), "2026-03-01", "2026-04-30")
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByReason[entity.ServiceGynecological] != 2 {
		t.Errorf("ByReason[ginecologica] = %d, want 2", stats.ByReason[entity.ServiceGynecological])
	}
	if stats.ByMonth["2026-03"] != 2 || stats.ByMonth["2026-04"] != 1 {
		t.Errorf("ByMonth = %v", stats.ByMonth)
	}
	if stats.ByWeekday["lunes"] != 2 {
		t.Errorf("ByWeekday[lunes] = %d, want 2", stats.ByWeekday["lunes"])
	}
	if stats.ByWeekday["martes"] != 1 {
		t.Errorf("ByWeekday[martes] = %d, want 1", stats.ByWeekday["martes"])
	}
}

func TestStatsRangeValidation(t *testing.T) {
	uc := NewStatsUsecase(nil, quietLogger(), newFakeAppointmentRepo())

	if _, err := uc.Appointments(context.Background(), "2026-04-30", "2026-03-01"); err != ErrInvalidRange {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if _, err := uc.Appointments(context.Background(), "bad", "2026-03-01"); err != ErrBadDateFormat {
		t.Fatalf("err = %v, want ErrBadDateFormat", err)
	}
}
