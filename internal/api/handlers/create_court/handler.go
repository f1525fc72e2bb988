package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/courts"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /courts - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /courts - Failed to create court: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts - Court created successfully: court_id=%d", court.ID)
	handlers.RespondJSON(w, http.StatusCreated, court)
}
