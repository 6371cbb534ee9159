package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// In-memory repository fakes. They ignore the *gorm.DB argument, so usecases
// built on them run without a database.

type fakeAppointmentRepo struct {
	appointments map[int]*entity.Appointment
	counts       map[string]int
	created      []*entity.Appointment
	orderUpdates map[int]int
	failOrderFor int
	paid         map[int]bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: make(map[int]*entity.Appointment),
		counts:       make(map[string]int),
		orderUpdates: make(map[int]int),
		paid:         make(map[int]bool),
	}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = len(f.appointments) + len(f.created) + 1
	f.created = append(f.created, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentRepo) FindByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindUnpaidByDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDateRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.Date >= from && a.Date <= to {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByPatientAndDate(ctx context.Context, db *gorm.DB, patientName, date string) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.PatientName == patientName && a.Date == date {
			return a, nil
		}
	}
	for _, a := range f.created {
		if a.PatientName == patientName && a.Date == date {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) CountByDate(ctx context.Context, db *gorm.DB, from string) (map[string]int, error) {
	out := make(map[string]int)
	for date, count := range f.counts {
		if date >= from {
			out[date] = count
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountForDate(ctx context.Context, db *gorm.DB, date string) (int64, error) {
	return int64(f.counts[date]), nil
}

func (f *fakeAppointmentRepo) UpdateDate(ctx context.Context, db *gorm.DB, id int, date string, queueOrder int) error {
	if a, ok := f.appointments[id]; ok {
		a.Date = date
		a.QueueOrder = queueOrder
	}
	return nil
}

func (f *fakeAppointmentRepo) UpdateQueueOrder(ctx context.Context, db *gorm.DB, id int, queueOrder int) error {
	if id == f.failOrderFor {
		return errors.New("update failed")
	}
	f.orderUpdates[id] = queueOrder
	return nil
}

func (f *fakeAppointmentRepo) MarkCalled(ctx context.Context, db *gorm.DB, id int) error {
	if a, ok := f.appointments[id]; ok {
		a.Called = true
	}
	return nil
}

func (f *fakeAppointmentRepo) MarkPaid(ctx context.Context, db *gorm.DB, id int, reason string) error {
	f.paid[id] = true
	return nil
}

func (f *fakeAppointmentRepo) RevertPaid(ctx context.Context, db *gorm.DB, id int) error {
	f.paid[id] = false
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := f.appointments[id]; !ok {
		return 0, nil
	}
	delete(f.appointments, id)
	return 1, nil
}

type fakeBlockedDateRepo struct {
	dates []string
}

func (f *fakeBlockedDateRepo) Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedDate) error {
	f.dates = append(f.dates, blocked.Date)
	return nil
}

func (f *fakeBlockedDateRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.BlockedDate, error) {
	return nil, nil
}

func (f *fakeBlockedDateRepo) FindByDate(ctx context.Context, db *gorm.DB, date string) (*entity.BlockedDate, error) {
	return nil, nil
}

func (f *fakeBlockedDateRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.BlockedDate, error) {
	return nil, nil
}

func (f *fakeBlockedDateRepo) Dates(ctx context.Context, db *gorm.DB) ([]string, error) {
	return f.dates, nil
}

func (f *fakeBlockedDateRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	return 0, nil
}

type fakeSettingRepo struct {
	rows []entity.Setting
}

func (f *fakeSettingRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Setting, error) {
	return f.rows, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, db *gorm.DB, settings []entity.Setting) error {
	f.rows = settings
	return nil
}

type fakeFollowupRepo struct {
	followups []*entity.Followup
	existing  map[int]bool
}

func newFakeFollowupRepo() *fakeFollowupRepo {
	return &fakeFollowupRepo{existing: make(map[int]bool)}
}

func (f *fakeFollowupRepo) Create(ctx context.Context, db *gorm.DB, followup *entity.Followup) error {
	f.followups = append(f.followups, followup)
	f.existing[followup.AppointmentID] = true
	return nil
}

func (f *fakeFollowupRepo) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	return f.existing[appointmentID], nil
}

func (f *fakeFollowupRepo) AppointmentIDsWithFollowup(ctx context.Context, db *gorm.DB, appointmentIDs []int) (map[int]bool, error) {
	out := make(map[int]bool)
	for _, id := range appointmentIDs {
		if f.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	paidAppointments map[int]bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{paidAppointments: make(map[int]bool)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	f.paidAppointments[payment.AppointmentID] = true
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindByAppointmentDate(ctx context.Context, db *gorm.DB, date string) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindByPaidRange(ctx context.Context, db *gorm.DB, from, to string) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	return f.paidAppointments[appointmentID], nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	return 0, nil
}

type fakeAuditService struct{}

func (fakeAuditService) Record(ctx context.Context, tx *gorm.DB, userID *int, action string, details map[string]interface{}) error {
	return nil
}

func (fakeAuditService) RecordChange(ctx context.Context, tx *gorm.DB, userID *int, action string, entityID int, oldValue, newValue interface{}) error {
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// nextDate returns the first date after today falling on the given weekday.
func nextDate(w time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(entity.DateLayout)
}

func availabilityWith(appointmentRepo *fakeAppointmentRepo, blockedRepo *fakeBlockedDateRepo, settingRepo *fakeSettingRepo) *service.AvailabilityService {
	return service.NewAvailabilityService(nil, quietLogger(), appointmentRepo, blockedRepo, settingRepo)
}
