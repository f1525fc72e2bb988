package update_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/courts"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "корт не найден"
	msgInvalidInput       = "некорректные параметры корта"
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

// Handle PUT /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req models.UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Update(r.Context(), courtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("PUT /courts/{id} - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /courts/{id} - Failed to update court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id} - Court updated successfully: court_id=%d", courtID)
	handlers.RespondJSON(w, http.StatusOK, court)
}
