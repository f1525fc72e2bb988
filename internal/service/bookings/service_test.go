package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager прозрачно выполняет функцию и отмечает активную транзакцию
// forcedErr имитирует конфликт сериализации
type fakeTxManager struct {
	forcedErr error
	active    bool
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.active = true
	defer func() { m.active = false }()
	return fn(ctx)
}

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	err     error

	tx *fakeTxManager

	listStatus    *domain.BookingStatus
	updatedStatus *domain.BookingStatus
	deletedID     *int64
	readInTx      bool
	writeInTx     bool
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.tx != nil {
		r.readInTx = r.tx.active
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.listStatus = status
	return r.list, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if r.tx != nil {
		r.writeInTx = r.tx.active
	}
	r.updatedStatus = &status
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	r.deletedID = &id
	return nil
}

func storedBooking() *domain.Booking {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         10,
		CourtID:    1,
		UserID:     42,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusPending,
		TotalPrice: 50,
	}
}

func newService(repo *fakeBookingRepo, tx *fakeTxManager) *Service {
	return NewService(repo, tx, nopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	resp, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}
	svc := newService(repo, &fakeTxManager{})

	_, err := svc.GetByID(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByIDForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	_, err := svc.GetByID(context.Background(), 10, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{storedBooking()}}
	svc := newService(repo, &fakeTxManager{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Nil(t, repo.listStatus)
}

func TestGetUserBookingsWithStatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newService(repo, &fakeTxManager{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	require.NotNil(t, repo.listStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.listStatus)
}

func TestGetUserBookingsInvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newService(repo, &fakeTxManager{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: "confirmed"})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestUpdateStatusRunsInTransaction(t *testing.T) {
	// Чтение статуса и запись перехода - одна критическая секция:
	// вне транзакции чтение не берет блокировку строки, и два конкурентных
	// перехода провалидировались бы по одному устаревшему статусу
	tx := &fakeTxManager{}
	repo := &fakeBookingRepo{booking: storedBooking(), tx: tx}
	svc := newService(repo, tx)

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: "confirmed"})
	require.NoError(t, err)

	assert.True(t, repo.readInTx, "status read must happen inside the transaction")
	assert.True(t, repo.writeInTx, "status write must happen inside the transaction")
}

func TestUpdateStatusConcurrentConflict(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{forcedErr: txmanager.ErrSerializationFailure})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrConcurrentConflict)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	// Из pending нельзя сразу в completed, из терминальных - никуда.
	// Терминальные случаи покрывают и гонку двух переходов: проигравший
	// перечитывает строку под блокировкой, видит терминальный статус
	// и не затирает его
	cases := []struct {
		name   string
		from   domain.BookingStatus
		target string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"cancelled to completed", domain.StatusCancelled, "completed"},
		{"completed to cancelled", domain.StatusCompleted, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := storedBooking()
			booking.Status = tc.from
			repo := &fakeBookingRepo{booking: booking}
			svc := newService(repo, &fakeTxManager{})

			err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: tc.target})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: "Confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 7, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updatedStatus)
}

func TestDelete(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	err := svc.Delete(context.Background(), 10, 42)
	require.NoError(t, err)

	require.NotNil(t, repo.deletedID)
	assert.Equal(t, int64(10), *repo.deletedID)
}

func TestDeleteForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking()}
	svc := newService(repo, &fakeTxManager{})

	err := svc.Delete(context.Background(), 10, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.deletedID)
}

func TestDeleteNotFound(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}
	svc := newService(repo, &fakeTxManager{})

	err := svc.Delete(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
