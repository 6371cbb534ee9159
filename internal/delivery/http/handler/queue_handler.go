package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/delivery/http/middleware"
	"clinic-frontdesk/internal/usecase"
	"clinic-frontdesk/pkg/response"
	"clinic-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

// Reorder applies a new queue order for one day
// @Summary Reorder the day queue
// @Tags Queue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "Reorder Request"
// @Success 200 {object} response.Response
// @Router /staff/appointments/order [put]
func (h *QueueHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.queueUsecase.Reorder(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to reorder queue")
		return
	}

	response.Success(w, http.StatusOK, "Queue reordered successfully", nil)
}

// Call marks the patient as called and announces the name
// @Summary Call a patient
// @Tags Queue
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /staff/appointments/{id}/call [post]
func (h *QueueHandler) Call(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointment, err := h.queueUsecase.CallPatient(r.Context(), actorID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to call patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient called successfully", appointment)
}
