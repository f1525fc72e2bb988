package process_payment

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует входные данные и разбирает тип платежа
func validateRequest(req *Request) (domain.PaymentType, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	paymentType, err := domain.ParsePaymentType(req.Type)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Платеж за бронирование без бронирования не имеет смысла
	if paymentType == domain.PaymentTypeBooking && req.BookingID == nil {
		return "", fmt.Errorf("%w: bookingID is required for booking payments", ErrInvalidInput)
	}

	if req.BookingID != nil && *req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	return paymentType, nil
}
