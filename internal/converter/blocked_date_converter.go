package converter

import (
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
)

// BlockedDateToResponse converts a BlockedDate entity to its response DTO
func BlockedDateToResponse(blocked *entity.BlockedDate) *dto.BlockedDateResponse {
	if blocked == nil {
		return nil
	}

	return &dto.BlockedDateResponse{
		ID:        blocked.ID,
		Date:      blocked.Date,
		Reason:    blocked.Reason,
		CreatedAt: blocked.CreatedAt,
	}
}

// BlockedDatesToResponses converts a slice of BlockedDate entities
func BlockedDatesToResponses(dates []entity.BlockedDate) []dto.BlockedDateResponse {
	responses := make([]dto.BlockedDateResponse, len(dates))
	for i, blocked := range dates {
		resp := BlockedDateToResponse(&blocked)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
