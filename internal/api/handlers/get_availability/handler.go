package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to get availability: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /courts/{id}/availability - Availability retrieved: court_id=%d, date=%s, slots=%d",
		courtID, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
