package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtUnavailable возвращается, когда корт административно закрыт для бронирования
	ErrCourtUnavailable = errors.New("create_booking: court is not available for booking")

	// ErrTimeSlotTaken возвращается, когда интервал пересекается с активным бронированием
	ErrTimeSlotTaken = errors.New("create_booking: time slot overlaps an active booking")

	// ErrConcurrentConflict возвращается, когда запрос проиграл гонку конкурентному
	// бронированию; повтор запроса заново пройдет проверку доступности
	ErrConcurrentConflict = errors.New("create_booking: lost race to a concurrent booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
