package domain

import (
	"errors"
	"fmt"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxCourtNameLength        = 100
	MaxCourtDescriptionLength = 500
)

// ActiveStatuses список статусов, блокирующих временной интервал корта
// Используется при проверке пересечений бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

var (
	// ErrUnknownBookingStatus возвращается при неизвестном токене статуса бронирования
	ErrUnknownBookingStatus = errors.New("domain: unknown booking status")

	// ErrUnknownPaymentStatus возвращается при неизвестном токене статуса платежа
	ErrUnknownPaymentStatus = errors.New("domain: unknown payment status")

	// ErrUnknownPaymentType возвращается при неизвестном токене типа платежа
	ErrUnknownPaymentType = errors.New("domain: unknown payment type")
)

// ParseBookingStatus парсит статус бронирования из строки
// Неизвестный токен - ошибка, а не прямое приведение типа
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBookingStatus, s)
	}
}

// ParsePaymentStatus парсит статус платежа из строки
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentStatus, s)
	}
}

// ParsePaymentType парсит тип платежа из строки
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentTypeBooking, PaymentTypeMembership, PaymentTypeOther:
		return PaymentType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentType, s)
	}
}
