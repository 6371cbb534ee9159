package dto

import "time"

// Request DTOs

// CreateAppointmentRequest is the public booking form.
type CreateAppointmentRequest struct {
	PatientName       string `json:"patient_name" validate:"required,min=2,max=120"`
	Phone             string `json:"phone" validate:"required,min=7,max=20"`
	Email             string `json:"email" validate:"omitempty,email"`
	Date              string `json:"date" validate:"required,len=10"`
	Reason            string `json:"reason" validate:"required,oneof=ginecologica mama post biopsia resultados"`
	InsuranceNumber   string `json:"insurance_number" validate:"omitempty,max=50"`
	InsuranceProvider string `json:"insurance_provider" validate:"omitempty,max=100"`
}

type MoveAppointmentRequest struct {
	Date string `json:"date" validate:"required,len=10"`
}

// ReorderRequest carries the full day queue in its new order.
type ReorderRequest struct {
	Date           string `json:"date" validate:"required,len=10"`
	AppointmentIDs []int  `json:"appointment_ids" validate:"required,min=1,dive,gt=0"`
}

// FollowupRequest records the visit outcome. When NeedsNewAppointment is set
// NewDate is required and a copy of the appointment is booked on it;
// otherwise NoAppointmentReason explains why none was made.
type FollowupRequest struct {
	AppointmentID       int    `json:"appointment_id" validate:"required,gt=0"`
	NeedsNewAppointment bool   `json:"needs_new_appointment"`
	NewDate             string `json:"new_date" validate:"omitempty,len=10"`
	NoAppointmentReason string `json:"no_appointment_reason" validate:"omitempty,max=255"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                int       `json:"id"`
	PatientName       string    `json:"patient_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Date              string    `json:"date"`
	Reason            string    `json:"reason"`
	InsuranceNumber   string    `json:"insurance_number,omitempty"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	Paid              bool      `json:"paid"`
	Called            bool      `json:"called"`
	QueueOrder        int       `json:"queue_order"`
	HasFollowup       bool      `json:"has_followup,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// BookingResponse wraps the created appointment with the staff-override
// warning when a weekend blackout was bypassed.
type BookingResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Warning     string               `json:"warning,omitempty"`
}
