package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)

	closer := func() {
		db.Close()
	}

	return repo, mock, closer
}

func TestCreate(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (court_id,user_id,start_time,end_time,status,total_price) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at")).
		WithArgs(int64(1), int64(42), start, end, "pending", 50.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		CourtID:    1,
		UserID:     42,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusPending,
		TotalPrice: 50.0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, now, booking.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, court_id, user_id, start_time, end_time, status, total_price, created_at, updated_at FROM bookings WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(10, 1, 42, start, end, "confirmed", 50.0, now, now))

	booking, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, court_id, user_id, start_time, end_time, status, total_price, created_at, updated_at FROM bookings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetActiveByCourtAndRange(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	from := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, court_id, user_id, start_time, end_time, status, total_price, created_at, updated_at FROM bookings WHERE court_id = $1 AND status <> $2 AND start_time < $3 AND end_time > $4 ORDER BY start_time ASC")).
		WithArgs(int64(1), "cancelled", to, from).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(10, 1, 42, from, from.Add(time.Hour), "pending", 50.0, now, now))

	bookings, err := repo.GetActiveByCourtAndRange(context.Background(), 1, from, to, nil)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(10), bookings[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByCourtAndRangeExcludesBooking(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	from := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, court_id, user_id, start_time, end_time, status, total_price, created_at, updated_at FROM bookings WHERE court_id = $1 AND status <> $2 AND start_time < $3 AND end_time > $4 AND id <> $5 ORDER BY start_time ASC")).
		WithArgs(int64(1), "cancelled", to, from, int64(10)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.GetActiveByCourtAndRange(context.Background(), 1, from, to, ptr.Ptr(int64(10)))
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("confirmed", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 10, domain.StatusConfirmed)
	require.NoError(t, err)

	// Нулевое количество затронутых строк - бронирование не найдено
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("confirmed", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateInterval(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	start := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET start_time = $1, end_time = $2, total_price = $3, updated_at = NOW() WHERE id = $4")).
		WithArgs(start, end, 75.0, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateInterval(context.Background(), 10, start, end, 75.0)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 10)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
