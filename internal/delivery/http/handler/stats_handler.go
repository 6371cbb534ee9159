package handler

import (
	"net/http"

	"clinic-frontdesk/internal/usecase"
	"clinic-frontdesk/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.Error(w, http.StatusBadRequest, "from and to query parameters are required", nil)
		return
	}

	stats, err := h.statsUsecase.Appointments(r.Context(), from, to)
	if err != nil {
		switch err {
		case usecase.ErrBadDateFormat, usecase.ErrInvalidRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to load statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}
