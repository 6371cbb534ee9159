package entity

import (
	"time"
)

// DateLayout is the calendar-day format used across the system. Appointments
// have whole-day granularity; there is no time-of-day component.
const DateLayout = "2006-01-02"

// Appointment represents one patient's booked visit. QueueOrder ranks
// appointments within their date only; values across dates are unrelated.
type Appointment struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName       string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	Phone             string    `gorm:"type:varchar(50)" json:"phone"`
	Email             string    `gorm:"type:varchar(255)" json:"email"`
	Date              string    `gorm:"type:date;not null;index" json:"date"`
	Reason            string    `gorm:"type:varchar(50);not null" json:"reason"`
	InsuranceNumber   string    `gorm:"type:varchar(100)" json:"insurance_number"`
	InsuranceProvider string    `gorm:"type:varchar(255)" json:"insurance_provider"`
	Paid              bool      `gorm:"not null;default:false" json:"paid"`
	Called            bool      `gorm:"not null;default:false" json:"called"`
	QueueOrder        int       `gorm:"not null;default:0" json:"queue_order"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Payments []Payment `gorm:"foreignKey:AppointmentID" json:"payments,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Weekday returns the appointment's day of week, or an error for a malformed date.
func (a *Appointment) Weekday() (time.Weekday, error) {
	d, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}
