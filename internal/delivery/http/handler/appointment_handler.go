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

type AppointmentHandler struct {
	bookingUsecase  usecase.BookingUsecase
	followupUsecase usecase.FollowupUsecase
	validator       *validator.CustomValidator
}

func NewAppointmentHandler(
	bookingUsecase usecase.BookingUsecase,
	followupUsecase usecase.FollowupUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase:  bookingUsecase,
		followupUsecase: followupUsecase,
		validator:       validator,
	}
}

// respondBookingError maps booking sentinels to their HTTP status.
func respondBookingError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrBadDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrSaturdayBlocked, usecase.ErrSundayBlocked,
		usecase.ErrDateBlocked, usecase.ErrDateFull:
		response.Conflict(w, err.Error())
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrAppointmentPaid:
		response.Conflict(w, err.Error())
	case usecase.ErrDuplicateSameDay, usecase.ErrFollowupExists:
		response.Conflict(w, err.Error())
	case usecase.ErrFollowupDateRequired:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to process appointment")
	}
}

// Create handles public booking
// @Summary Book an appointment
// @Description Public booking with full availability validation
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreatePublic(r.Context(), &req)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", booking)
}

// CreateStaff handles desk booking with override rules
// @Summary Book an appointment from the desk
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Router /staff/appointments [post]
func (h *AppointmentHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", booking)
}

// List returns the day queue
// @Summary Day queue
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param date query string true "Clinic date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /staff/appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	appointments, err := h.bookingUsecase.ListByDate(r.Context(), date)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Move reschedules an appointment to another date
// @Summary Move an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/appointments/{id}/date [put]
func (h *AppointmentHandler) Move(w http.ResponseWriter, r *http.Request) {
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

	var req dto.MoveAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Move(r.Context(), actorID, appointmentID, &req)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment moved successfully", appointment)
}

// Delete removes an appointment
// @Summary Delete an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /admin/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.bookingUsecase.Delete(r.Context(), actorID, appointmentID); err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

// Availability returns the public calendar state
// @Summary Availability
// @Description Unavailable dates, weekend flags and the service catalog
// @Tags Appointments
// @Produce json
// @Success 200 {object} response.Response
// @Router /availability [get]
func (h *AppointmentHandler) Availability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.bookingUsecase.Availability(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// RecordFollowup stores a visit outcome
// @Summary Record a follow-up outcome
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/followups [post]
func (h *AppointmentHandler) RecordFollowup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.FollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.followupUsecase.Record(r.Context(), actorID, &req)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Follow-up recorded successfully", booking)
}
