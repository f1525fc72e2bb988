package get_user_payments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUserID(w, r, "GET /users/{id}/payments")
	if !ok {
		return
	}

	result, err := h.service.GetUserPayments(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/payments - Failed to get payments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/payments - Payments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSummary GET /api/v1/users/{userId}/payments/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUserID(w, r, "GET /users/{id}/payments/summary")
	if !ok {
		return
	}

	result, err := h.service.GetUserSummary(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/payments/summary - Failed to get summary: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/payments/summary - Summary retrieved successfully: user_id=%d, total=%.2f",
		userID, result.TotalSpent)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// authorizedUserID извлекает userId из пути и проверяет, что он совпадает
// с аутентифицированным пользователем
func (h *Handler) authorizedUserID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}

	// Историю платежей может смотреть только сам пользователь
	if authUserID != userID {
		h.logger.Warn("%s - Access denied: user_id=%d, auth_user_id=%d", route, userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return 0, false
	}

	return userID, true
}
