package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	booking := Booking{StartTime: ts(10, 0), EndTime: ts(12, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", ts(10, 0), ts(12, 0), true},
		{"contained interval", ts(10, 30), ts(11, 30), true},
		{"containing interval", ts(9, 0), ts(13, 0), true},
		{"overlaps start", ts(9, 0), ts(10, 30), true},
		{"overlaps end", ts(11, 30), ts(13, 0), true},
		{"touches start boundary", ts(9, 0), ts(10, 0), false},
		{"touches end boundary", ts(12, 0), ts(13, 0), false},
		{"strictly before", ts(8, 0), ts(9, 0), false},
		{"strictly after", ts(13, 0), ts(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			booking := Booking{Status: tt.from}
			assert.Equal(t, tt.want, booking.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingCanBeRescheduled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeRescheduled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeRescheduled())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBookingStatus)

	// Регистр не нормализуется
	_, err = ParseBookingStatus("Confirmed")
	require.Error(t, err)
}

func TestParsePaymentType(t *testing.T) {
	paymentType, err := ParsePaymentType("booking")
	require.NoError(t, err)
	assert.Equal(t, PaymentTypeBooking, paymentType)

	_, err = ParsePaymentType("subscription")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPaymentType)
}
