package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCourtNotFound      = "корт не найден"
	msgCourtUnavailable   = "корт недоступен для бронирования"
	msgSlotTaken          = "выбранный интервал уже занят"
	msgConcurrentConflict = "конфликт одновременных бронирований, повторите запрос"
	msgInvalidInput       = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtUnavailable):
			h.logger.Warn("POST /bookings - Court unavailable: court_id=%d", req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCourtUnavailable)

		case errors.Is(err, createBooking.ErrTimeSlotTaken):
			h.logger.Warn("POST /bookings - Time slot taken: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrConcurrentConflict):
			h.logger.Warn("POST /bookings - Concurrent conflict: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, court_id=%d, error=%v", userID, req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
