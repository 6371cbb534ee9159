package service

import (
	"context"
	"sort"
	"time"

	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RejectReason tags why a candidate booking date was refused.
type RejectReason string

const (
	ReasonSaturdayBlocked RejectReason = "saturday_blocked"
	ReasonSundayBlocked   RejectReason = "sunday_blocked"
	ReasonDateBlocked     RejectReason = "date_blocked"
	ReasonDateFull        RejectReason = "date_full"
	ReasonBadDate         RejectReason = "bad_date"
)

// Message returns the user-facing text for the rejection.
func (r RejectReason) Message() string {
	switch r {
	case ReasonSaturdayBlocked:
		return "No appointments can be scheduled on Saturdays"
	case ReasonSundayBlocked:
		return "No appointments can be scheduled on Sundays"
	case ReasonDateBlocked:
		return "The selected date is not available, please choose another"
	case ReasonDateFull:
		return "The selected date is fully booked, please choose another"
	case ReasonBadDate:
		return "The date must use the YYYY-MM-DD format"
	default:
		return "The selected date was rejected"
	}
}

// Decision is the outcome of validating one candidate date. Warning carries
// the staff-override note when a weekend blackout was bypassed.
type Decision struct {
	OK      bool
	Reason  RejectReason
	Warning string
}

// FullDates returns, sorted, the dates at or past their weekday capacity.
// Only dates >= from count: an elapsed low-capacity day must not resurface
// as "full". Sundays carry no capacity limit (the blackout flag governs
// them), and a weekday without a usable limit is never full.
//
// Pure function of its inputs; calling it twice without intervening writes
// yields the same set.
func FullDates(counts map[string]int, settings entity.ClinicSettings, from time.Time) []string {
	cutoff := from.Format(entity.DateLayout)

	var full []string
	for date, count := range counts {
		if date < cutoff {
			continue
		}
		day, err := time.Parse(entity.DateLayout, date)
		if err != nil {
			continue
		}
		limit, capped := settings.Limit(day.Weekday())
		if !capped {
			continue
		}
		if count >= limit {
			full = append(full, date)
		}
	}

	sort.Strings(full)
	return full
}

// ValidateDate applies the booking rules in order, first failure wins:
//
//  1. Saturday blackout - staff gets a warning instead of a rejection
//  2. Sunday blackout - same staff relaxation
//  3. manually blocked date - absolute, staff cannot bypass
//  4. full date - public only; staff overbooks freely
func ValidateDate(date string, settings entity.ClinicSettings, blocked, full map[string]bool, staffOverride bool) Decision {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return Decision{Reason: ReasonBadDate}
	}

	if settings.BlockSaturdays && day.Weekday() == time.Saturday {
		if !staffOverride {
			return Decision{Reason: ReasonSaturdayBlocked}
		}
		return validateAfterWeekend(date, blocked, full, staffOverride,
			"the current configuration blocks Saturdays, booking allowed for staff")
	}
	if settings.BlockSundays && day.Weekday() == time.Sunday {
		if !staffOverride {
			return Decision{Reason: ReasonSundayBlocked}
		}
		return validateAfterWeekend(date, blocked, full, staffOverride,
			"the current configuration blocks Sundays, booking allowed for staff")
	}

	return validateAfterWeekend(date, blocked, full, staffOverride, "")
}

func validateAfterWeekend(date string, blocked, full map[string]bool, staffOverride bool, warning string) Decision {
	if blocked[date] {
		return Decision{Reason: ReasonDateBlocked}
	}
	if full[date] && !staffOverride {
		return Decision{Reason: ReasonDateFull}
	}
	return Decision{OK: true, Warning: warning}
}

// AvailabilitySnapshot is the clinic state one validation or calendar render
// works against. It is rebuilt from the store on every request; the engine
// never caches counts or blocks across requests, so a stale "is full"
// verdict cannot be served.
type AvailabilitySnapshot struct {
	Settings entity.ClinicSettings
	Blocked  map[string]bool
	Full     map[string]bool
}

// Validate checks one candidate date against this snapshot.
func (s *AvailabilitySnapshot) Validate(date string, staffOverride bool) Decision {
	return ValidateDate(date, s.Settings, s.Blocked, s.Full, staffOverride)
}

// Unavailable returns blocked-union-full, sorted, for the calendar widget.
func (s *AvailabilitySnapshot) Unavailable() []string {
	seen := make(map[string]bool, len(s.Blocked)+len(s.Full))
	for date := range s.Blocked {
		seen[date] = true
	}
	for date := range s.Full {
		seen[date] = true
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// AvailabilityService assembles snapshots from the record store.
type AvailabilityService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	blockedRepo     repository.BlockedDateRepository
	settingRepo     repository.SettingRepository
}

func NewAvailabilityService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	blockedRepo repository.BlockedDateRepository,
	settingRepo repository.SettingRepository,
) *AvailabilityService {
	return &AvailabilityService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		settingRepo:     settingRepo,
	}
}

// Settings loads and parses the settings table, logging any malformed
// capacity values. Absent keys resolve to their defaults.
func (s *AvailabilityService) Settings(ctx context.Context) (entity.ClinicSettings, error) {
	rows, err := s.settingRepo.FindAll(ctx, s.db)
	if err != nil {
		return entity.ClinicSettings{}, err
	}

	settings, warnings := entity.ParseClinicSettings(rows)
	for _, w := range warnings {
		s.log.Warn(w)
	}
	return settings, nil
}

// Snapshot rebuilds the availability state for dates >= from.
func (s *AvailabilityService) Snapshot(ctx context.Context, from time.Time) (*AvailabilitySnapshot, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	blockedDates, err := s.blockedRepo.Dates(ctx, s.db)
	if err != nil {
		return nil, err
	}

	counts, err := s.appointmentRepo.CountByDate(ctx, s.db, from.Format(entity.DateLayout))
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool, len(blockedDates))
	for _, date := range blockedDates {
		blocked[date] = true
	}

	full := make(map[string]bool)
	for _, date := range FullDates(counts, settings, from) {
		full[date] = true
	}

	return &AvailabilitySnapshot{
		Settings: settings,
		Blocked:  blocked,
		Full:     full,
	}, nil
}
