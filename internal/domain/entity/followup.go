package entity

import "time"

// Followup records the outcome of a paid visit: either the patient was
// rebooked for a new date, or the reason no further appointment is needed.
type Followup struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID       int       `gorm:"not null;index" json:"appointment_id"`
	NeedsNewAppointment bool      `gorm:"not null" json:"needs_new_appointment"`
	NoAppointmentReason string    `gorm:"type:text" json:"no_appointment_reason,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Followup) TableName() string {
	return "followups"
}
