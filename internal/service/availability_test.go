package service

import (
	"reflect"
	"testing"
	"time"

	"clinic-frontdesk/internal/domain/entity"
)

func testSettings() entity.ClinicSettings {
	return entity.ClinicSettings{
		BlockSaturdays: true,
		BlockSundays:   true,
		Limits: map[time.Weekday]int{
			time.Monday:    2,
			time.Tuesday:   2,
			time.Wednesday: 2,
			time.Thursday:  2,
			time.Friday:    2,
			time.Saturday:  2,
		},
		Prices: map[string]string{},
	}
}

func TestFullDatesCapacityBoundary(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday

	tests := []struct {
		name   string
		counts map[string]int
		want   []string
	}{
		{
			name:   "below limit is not full",
			counts: map[string]int{"2026-09-01": 1},
			want:   nil,
		},
		{
			name:   "at limit is full",
			counts: map[string]int{"2026-09-01": 2},
			want:   []string{"2026-09-01"},
		},
		{
			name:   "over limit is full",
			counts: map[string]int{"2026-09-01": 5},
			want:   []string{"2026-09-01"},
		},
		{
			name:   "past dates are ignored",
			counts: map[string]int{"2026-08-31": 10, "2026-09-02": 2},
			want:   []string{"2026-09-02"},
		},
		{
			name:   "output is sorted",
			counts: map[string]int{"2026-09-04": 3, "2026-09-02": 3, "2026-09-03": 3},
			want:   []string{"2026-09-02", "2026-09-03", "2026-09-04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FullDates(tt.counts, testSettings(), from)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FullDates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullDatesUncappedWeekday(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	settings := testSettings()
	delete(settings.Limits, time.Wednesday)

	counts := map[string]int{"2026-09-02": 50} // Wednesday
	if got := FullDates(counts, settings, from); got != nil {
		t.Errorf("FullDates() = %v, want nil for uncapped weekday", got)
	}

	// Sunday never carries a limit.
	counts = map[string]int{"2026-09-06": 50}
	if got := FullDates(counts, testSettings(), from); got != nil {
		t.Errorf("FullDates() = %v, want nil for Sunday", got)
	}
}

func TestFullDatesIdempotent(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	counts := map[string]int{"2026-09-01": 2, "2026-09-03": 2}

	first := FullDates(counts, testSettings(), from)
	second := FullDates(counts, testSettings(), from)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FullDates() not idempotent: %v then %v", first, second)
	}
}

func TestValidateDateRuleOrder(t *testing.T) {
	blocked := map[string]bool{"2026-09-02": true}
	full := map[string]bool{"2026-09-03": true}

	tests := []struct {
		name       string
		date       string
		staff      bool
		wantOK     bool
		wantReason RejectReason
	}{
		{"open weekday accepted", "2026-09-01", false, true, ""},
		{"malformed date rejected", "02-09-2026", false, false, ReasonBadDate},
		{"saturday rejected for public", "2026-09-05", false, false, ReasonSaturdayBlocked},
		{"sunday rejected for public", "2026-09-06", false, false, ReasonSundayBlocked},
		{"blocked date rejected for public", "2026-09-02", false, false, ReasonDateBlocked},
		{"full date rejected for public", "2026-09-03", false, false, ReasonDateFull},
		{"saturday allowed for staff", "2026-09-05", true, true, ""},
		{"sunday allowed for staff", "2026-09-06", true, true, ""},
		{"blocked date rejected for staff too", "2026-09-02", true, false, ReasonDateBlocked},
		{"full date allowed for staff", "2026-09-03", true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDate(tt.date, testSettings(), blocked, full, tt.staff)
			if got.OK != tt.wantOK {
				t.Fatalf("ValidateDate(%s, staff=%v).OK = %v, want %v", tt.date, tt.staff, got.OK, tt.wantOK)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("ValidateDate(%s, staff=%v).Reason = %q, want %q", tt.date, tt.staff, got.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateDateStaffWeekendWarning(t *testing.T) {
	got := ValidateDate("2026-09-05", testSettings(), nil, nil, true)
	if !got.OK {
		t.Fatalf("expected staff Saturday booking to be allowed, got reason %q", got.Reason)
	}
	if got.Warning == "" {
		t.Error("expected a warning on staff weekend override")
	}

	got = ValidateDate("2026-09-01", testSettings(), nil, nil, true)
	if got.Warning != "" {
		t.Errorf("unexpected warning on an open weekday: %q", got.Warning)
	}
}

func TestValidateDateWeekendOpenWhenUnblocked(t *testing.T) {
	settings := testSettings()
	settings.BlockSaturdays = false

	got := ValidateDate("2026-09-05", settings, nil, nil, false)
	if !got.OK {
		t.Errorf("expected open Saturday to be accepted, got reason %q", got.Reason)
	}
}

func TestSnapshotUnavailableUnionSorted(t *testing.T) {
	snapshot := &AvailabilitySnapshot{
		Blocked: map[string]bool{"2026-09-10": true, "2026-09-02": true},
		Full:    map[string]bool{"2026-09-05": true, "2026-09-02": true},
	}

	want := []string{"2026-09-02", "2026-09-05", "2026-09-10"}
	if got := snapshot.Unavailable(); !reflect.DeepEqual(got, want) {
		t.Errorf("Unavailable() = %v, want %v", got, want)
	}
}
