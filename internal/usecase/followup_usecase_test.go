package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/service"
)

func newFollowupFixture() (*fakeAppointmentRepo, *fakeFollowupRepo, FollowupUsecase) {
	appointmentRepo := newFakeAppointmentRepo()
	followupRepo := newFakeFollowupRepo()
	settingRepo := &fakeSettingRepo{}

	uc := NewFollowupUsecase(
		nil,
		quietLogger(),
		followupRepo,
		appointmentRepo,
		availabilityWith(appointmentRepo, &fakeBlockedDateRepo{}, settingRepo),
		service.NopNotifier{},
	)
	return appointmentRepo, followupRepo, uc
}

func TestFollowupWithoutNewAppointment(t *testing.T) {
	appointmentRepo, followupRepo, uc := newFollowupFixture()
	appointmentRepo.appointments[3] = &entity.Appointment{ID: 3, PatientName: "Rosa Gil", Date: nextDate(time.Monday)}

	req := &dto.FollowupRequest{
		AppointmentID:       3,
		NoAppointmentReason: "alta definitiva",
	}
	if _, err := uc.Record(context.Background(), 1, req); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(followupRepo.followups) != 1 {
		t.Fatal("expected one follow-up row")
	}
	if followupRepo.followups[0].NeedsNewAppointment {
		t.Error("NeedsNewAppointment should be false")
	}
	if followupRepo.followups[0].NoAppointmentReason != "alta definitiva" {
		t.Errorf("reason = %q", followupRepo.followups[0].NoAppointmentReason)
	}
}

func TestFollowupRequiresDateForNewAppointment(t *testing.T) {
	appointmentRepo, _, uc := newFollowupFixture()
	appointmentRepo.appointments[3] = &entity.Appointment{ID: 3, PatientName: "Rosa Gil"}

	req := &dto.FollowupRequest{AppointmentID: 3, NeedsNewAppointment: true}
	if _, err := uc.Record(context.Background(), 1, req); err != ErrFollowupDateRequired {
		t.Fatalf("err = %v, want ErrFollowupDateRequired", err)
	}
}

func TestFollowupRejectsDuplicateOutcome(t *testing.T) {
	appointmentRepo, followupRepo, uc := newFollowupFixture()
	appointmentRepo.appointments[3] = &entity.Appointment{ID: 3, PatientName: "Rosa Gil"}
	followupRepo.existing[3] = true

	req := &dto.FollowupRequest{AppointmentID: 3, NoAppointmentReason: "alta"}
	if _, err := uc.Record(context.Background(), 1, req); err != ErrFollowupExists {
		t.Fatalf("err = %v, want ErrFollowupExists", err)
	}
}

func TestFollowupRejectsSameDayDuplicatePatient(t *testing.T) {
	appointmentRepo, _, uc := newFollowupFixture()

	monday := nextDate(time.Monday)
	appointmentRepo.appointments[3] = &entity.Appointment{ID: 3, PatientName: "Rosa Gil", Date: nextDate(time.Tuesday)}
	appointmentRepo.appointments[8] = &entity.Appointment{ID: 8, PatientName: "Rosa Gil", Date: monday}

	req := &dto.FollowupRequest{
		AppointmentID:       3,
		NeedsNewAppointment: true,
		NewDate:             monday,
	}
	if _, err := uc.Record(context.Background(), 1, req); err != ErrDuplicateSameDay {
		t.Fatalf("err = %v, want ErrDuplicateSameDay", err)
	}
	if len(appointmentRepo.created) != 0 {
		t.Error("duplicate must not create an appointment")
	}
}

func TestFollowupMissingAppointment(t *testing.T) {
	_, _, uc := newFollowupFixture()

	req := &dto.FollowupRequest{AppointmentID: 77, NoAppointmentReason: "alta"}
	if _, err := uc.Record(context.Background(), 1, req); err != ErrAppointmentNotFound {
		t.Fatalf("err = %v, want ErrAppointmentNotFound", err)
	}
}
