package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// allowedTransitions допустимые переходы жизненного цикла бронирования
// pending -> confirmed -> completed; отмена возможна из любого нетерминального статуса
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// IsTerminal returns true if no further transition is permitted from the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo returns true if the transition to target is a legal lifecycle edge
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Booking represents a court booking in the system
type Booking struct {
	ID         int64
	CourtID    int64
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus
	TotalPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time interval
// Отменённое бронирование интервал не занимает
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeRescheduled returns true if the booking interval may still be changed
func (b *Booking) CanBeRescheduled() bool {
	return !b.Status.IsTerminal()
}

// CanTransitionTo returns true if the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	return b.Status.CanTransitionTo(target)
}

// Overlaps reports whether the booking interval intersects [start, end)
// Интервалы полуоткрытые: граничащие бронирования пересечением не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
