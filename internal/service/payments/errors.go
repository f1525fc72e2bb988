package payments

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
