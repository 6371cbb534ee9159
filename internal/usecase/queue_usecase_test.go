package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/service"
)

func TestReorderAssignsListPosition(t *testing.T) {
	appointmentRepo := newFakeAppointmentRepo()
	uc := NewQueueUsecase(nil, quietLogger(), appointmentRepo, service.NewAnnouncer(), fakeAuditService{})

	req := &dto.ReorderRequest{
		Date:           nextDate(time.Monday),
		AppointmentIDs: []int{42, 7, 19},
	}
	if err := uc.Reorder(context.Background(), req); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := map[int]int{42: 0, 7: 1, 19: 2}
	for id, order := range want {
		if got := appointmentRepo.orderUpdates[id]; got != order {
			t.Errorf("appointment %d order = %d, want %d", id, got, order)
		}
	}
}

func TestReorderPartialFailureKeepsEarlierRows(t *testing.T) {
	appointmentRepo := newFakeAppointmentRepo()
	appointmentRepo.failOrderFor = 7
	uc := NewQueueUsecase(nil, quietLogger(), appointmentRepo, service.NewAnnouncer(), fakeAuditService{})

	req := &dto.ReorderRequest{
		Date:           nextDate(time.Monday),
		AppointmentIDs: []int{42, 7, 19},
	}
	if err := uc.Reorder(context.Background(), req); err == nil {
		t.Fatal("expected an error from the failing row")
	}

	if got, ok := appointmentRepo.orderUpdates[42]; !ok || got != 0 {
		t.Errorf("row before the failure lost its update: %v", appointmentRepo.orderUpdates)
	}
	if _, ok := appointmentRepo.orderUpdates[19]; ok {
		t.Error("row after the failure should not have been updated")
	}
}
