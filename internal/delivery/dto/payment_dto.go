package dto

import "time"

// Request DTOs

type CreatePaymentRequest struct {
	AppointmentID int     `json:"appointment_id" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required,oneof=efectivo tarjeta transferencia"`
	Notes         string  `json:"notes" validate:"omitempty,max=255"`
	// Reason replaces the appointment reason when checkout corrects it.
	Reason string `json:"reason" validate:"omitempty,oneof=ginecologica mama post biopsia resultados"`
}

// Response DTOs

type PaymentResponse struct {
	ID            int     `json:"id"`
	AppointmentID int     `json:"appointment_id"`
	PatientName   string  `json:"patient_name,omitempty"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	PaidOn        string  `json:"paid_on"`
	Notes         string  `json:"notes,omitempty"`
	ReceiptCode   string  `json:"receipt_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// PendingChargeResponse is an unpaid visit with its price from settings.
type PendingChargeResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Price       string               `json:"price,omitempty"`
}

// DayCashResponse is the checkout screen for one clinic day.
type DayCashResponse struct {
	Date     string                  `json:"date"`
	Pending  []PendingChargeResponse `json:"pending"`
	Payments []PaymentResponse       `json:"payments"`
	Total    float64                 `json:"total"`
}

// PaymentReportResponse aggregates payments over a closed date range.
type PaymentReportResponse struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Payments []PaymentResponse `json:"payments"`
	Total    float64           `json:"total"`
	ByMethod map[string]float64 `json:"by_method"`
}
