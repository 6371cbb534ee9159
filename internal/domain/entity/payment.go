package entity

import "time"

// Payment records money collected for an appointment. An appointment with at
// least one payment can no longer be moved to another date.
type Payment struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int       `gorm:"not null;index" json:"appointment_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method        string    `gorm:"type:varchar(50);not null" json:"method"`
	PaidOn        string    `gorm:"type:date;not null;index" json:"paid_on"`
	Notes         string    `gorm:"type:text" json:"notes"`
	ReceiptCode   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"receipt_code"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
