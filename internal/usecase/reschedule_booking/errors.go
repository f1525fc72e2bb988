package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCourtNotFound возвращается, когда корт бронирования не найден
	ErrCourtNotFound = errors.New("reschedule_booking: court not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrBookingFinalized возвращается при попытке перенести бронирование
	// в терминальном статусе (cancelled, completed)
	ErrBookingFinalized = errors.New("reschedule_booking: booking is in a terminal status")

	// ErrTimeSlotTaken возвращается, когда новый интервал пересекается с активным бронированием
	ErrTimeSlotTaken = errors.New("reschedule_booking: time slot overlaps an active booking")

	// ErrConcurrentConflict возвращается, когда запрос проиграл гонку конкурентному писателю
	ErrConcurrentConflict = errors.New("reschedule_booking: lost race to a concurrent writer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
