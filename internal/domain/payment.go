package domain

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentType represents what the payment is for
type PaymentType string

const (
	PaymentTypeBooking    PaymentType = "booking"
	PaymentTypeMembership PaymentType = "membership"
	PaymentTypeOther      PaymentType = "other"
)

// Payment represents a settled payment record
type Payment struct {
	ID            int64
	UserID        int64
	BookingID     *int64
	Amount        float64
	Status        PaymentStatus
	Type          PaymentType
	TransactionID string
	PaymentDate   time.Time

	CreatedAt time.Time
}

// IsForBooking returns true if the payment is linked to a booking
func (p *Payment) IsForBooking() bool {
	return p.Type == PaymentTypeBooking && p.BookingID != nil
}
