package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrentConflict возвращается, когда смена статуса проиграла гонку
	// конкурентному изменению того же бронирования
	ErrConcurrentConflict = errors.New("lost race to a concurrent writer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
