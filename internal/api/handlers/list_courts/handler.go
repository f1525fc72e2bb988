package list_courts

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
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

// Handle GET /api/v1/courts?available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"

	result, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Courts retrieved successfully: count=%d", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
