package process_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда оплачиваемое бронирование не найдено
	ErrBookingNotFound = errors.New("process_payment: booking not found")

	// ErrAccessDenied возвращается при попытке оплатить чужое бронирование
	ErrAccessDenied = errors.New("process_payment: access denied")

	// ErrInvalidTransition возвращается, когда бронирование нельзя подтвердить
	// из его текущего статуса
	ErrInvalidTransition = errors.New("process_payment: invalid status transition")

	// ErrConcurrentConflict возвращается при конфликте сериализации транзакций
	ErrConcurrentConflict = errors.New("process_payment: concurrent conflict, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("process_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment: internal error")
)
