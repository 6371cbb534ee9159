package converter

import (
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to its response DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		PaidOn:        payment.PaidOn,
		Notes:         payment.Notes,
		ReceiptCode:   payment.ReceiptCode,
		CreatedAt:     payment.CreatedAt,
	}

	if payment.Appointment.ID != 0 {
		response.PatientName = payment.Appointment.PatientName
	}

	return response
}

// PaymentsToResponses converts a slice of Payment entities
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
