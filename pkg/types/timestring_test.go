package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	_, err = NewTimeStringFromString("8:30:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	next, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), next)

	// Конец суток представляется как 24:00
	endOfDay, err := TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), endOfDay)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore(TimeString("22:00")))
	assert.False(t, TimeString("22:00").IsBefore(TimeString("08:00")))
	assert.True(t, TimeString("22:00").IsAfter(TimeString("08:00")))
	assert.False(t, TimeString("08:00").IsBefore(TimeString("08:00")))
}

func TestTimeStringOnDate(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	moment, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), moment)

	// Часовой пояс берется из даты
	loc := time.FixedZone("MSK", 3*60*60)
	localDate := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)
	moment, err = TimeString("09:30").OnDate(localDate)
	require.NoError(t, err)
	assert.Equal(t, loc, moment.Location())
}
