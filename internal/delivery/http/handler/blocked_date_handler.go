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

type BlockedDateHandler struct {
	blockedDateUsecase usecase.BlockedDateUsecase
	validator          *validator.CustomValidator
}

func NewBlockedDateHandler(blockedDateUsecase usecase.BlockedDateUsecase, validator *validator.CustomValidator) *BlockedDateHandler {
	return &BlockedDateHandler{
		blockedDateUsecase: blockedDateUsecase,
		validator:          validator,
	}
}

func (h *BlockedDateHandler) List(w http.ResponseWriter, r *http.Request) {
	dates, err := h.blockedDateUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list blocked dates")
		return
	}

	response.Success(w, http.StatusOK, "Blocked dates retrieved successfully", dates)
}

func (h *BlockedDateHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blocked, err := h.blockedDateUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBadDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDateAlreadyBlocked:
			response.Conflict(w, "Date is already blocked")
		default:
			response.InternalServerError(w, "Failed to block date")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Date blocked successfully", blocked)
}

func (h *BlockedDateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	blockedDateID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blocked date ID", nil)
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.blockedDateUsecase.Delete(r.Context(), actorID, blockedDateID); err != nil {
		switch err {
		case usecase.ErrBlockedDateNotFound:
			response.NotFound(w, "Blocked date not found")
		default:
			response.InternalServerError(w, "Failed to unblock date")
		}
		return
	}

	response.Success(w, http.StatusOK, "Date unblocked successfully", nil)
}
