package get_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/courts"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgNotFound       = "корт не найден"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	court, err := h.service.GetByID(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /courts/{id} - Failed to get court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id} - Court retrieved successfully: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusOK, court)
}
