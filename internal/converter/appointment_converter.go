package converter

import (
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                appointment.ID,
		PatientName:       appointment.PatientName,
		Phone:             appointment.Phone,
		Email:             appointment.Email,
		Date:              appointment.Date,
		Reason:            appointment.Reason,
		InsuranceNumber:   appointment.InsuranceNumber,
		InsuranceProvider: appointment.InsuranceProvider,
		Paid:              appointment.Paid,
		Called:            appointment.Called,
		QueueOrder:        appointment.QueueOrder,
		CreatedAt:         appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a day queue, marking rows that already
// carry a follow-up outcome.
func AppointmentsToResponses(appointments []entity.Appointment, withFollowup map[int]bool) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			resp.HasFollowup = withFollowup[appointment.ID]
			responses[i] = *resp
		}
	}
	return responses
}
