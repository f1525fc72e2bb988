package process_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	processPayment "github.com/m04kA/SMC-CourtService/internal/usecase/process_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "бронирование не может быть подтверждено из текущего статуса"
	msgConcurrentConflict = "конфликт одновременных операций, повторите запрос"
	msgInvalidInput       = "некорректные параметры платежа"
)

type Handler struct {
	useCase ProcessPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/process
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/process - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ProcessPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/process - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, processPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/process - Booking not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, processPayment.ErrAccessDenied):
			h.logger.Warn("POST /payments/process - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, processPayment.ErrInvalidTransition):
			h.logger.Warn("POST /payments/process - Invalid transition: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, processPayment.ErrConcurrentConflict):
			h.logger.Warn("POST /payments/process - Concurrent conflict: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, processPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/process - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/process - Failed to process payment: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /payments/process - Payment processed successfully: payment_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
