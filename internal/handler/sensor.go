package handler

import (
	"errors"
	"net/http"

	"github.com/probox/probox-api/internal/model"
	"github.com/probox/probox-api/internal/service"
)

// SensorHandler handles HTTP requests for sensor readings.
type SensorHandler struct {
	service *service.SensorService
}

// NewSensorHandler creates a new SensorHandler.
func NewSensorHandler(svc *service.SensorService) *SensorHandler {
	return &SensorHandler{service: svc}
}

// HandleLatest handles GET /api/probox requests.
func (h *SensorHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	reading, err := h.service.Latest(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			writeJSON(w, http.StatusNotFound, failure("No data found."))
			return
		}
		writeJSON(w, http.StatusInternalServerError, upstreamFailure("Error retrieving latest data: ", err))
		return
	}

	writeJSON(w, http.StatusOK, model.Response{
		Success: true,
		Message: "Latest data retrieved successfully.",
		Data:    reading,
	})
}

// HandleHistory handles GET /api/history requests.
func (h *SensorHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	readings, err := h.service.History(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			writeJSON(w, http.StatusNotFound, failure("No history data found."))
			return
		}
		writeJSON(w, http.StatusInternalServerError, upstreamFailure("Error retrieving history data: ", err))
		return
	}

	writeJSON(w, http.StatusOK, model.Response{
		Success: true,
		Message: "Historical data retrieved successfully.",
		Data:    readings,
	})
}
