package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-CourtService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgBookingFinalized   = "бронирование завершено и не может быть перенесено"
	msgSlotTaken          = "выбранный интервал уже занят"
	msgConcurrentConflict = "конфликт одновременных бронирований, повторите запрос"
	msgInvalidInput       = "некорректные параметры переноса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrBookingFinalized):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking finalized: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingFinalized)

		case errors.Is(err, rescheduleBooking.ErrTimeSlotTaken):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Time slot taken: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleBooking.ErrConcurrentConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Concurrent conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
