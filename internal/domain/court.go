package domain

import "time"

// Court represents a bookable court
type Court struct {
	ID          int64
	Name        string
	Description string
	IsIndoor    bool
	HourlyRate  float64
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAcceptBookings returns true if the court is administratively open for booking
func (c *Court) CanAcceptBookings() bool {
	return c.IsAvailable
}
