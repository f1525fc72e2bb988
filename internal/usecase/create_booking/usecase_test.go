package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/pricing"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

// Тестовые фейки

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager прозрачно выполняет функцию без транзакции
// forcedErr имитирует конфликт сериализации
type fakeTxManager struct {
	forcedErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	return fn(ctx)
}

type fakeBookingRepo struct {
	active  []*domain.Booking
	created *domain.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 1
	r.created = booking
	return booking, nil
}

func (r *fakeBookingRepo) GetActiveByCourtAndRange(ctx context.Context, courtID int64, from, to time.Time, excludeBookingID *int64) ([]*domain.Booking, error) {
	return r.active, nil
}

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (r *fakeCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.court, nil
}

func newUseCase(bookings *fakeBookingRepo, courts *fakeCourtRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(bookings, courts, pricing.NewEngine(), tx, nopLogger{})
}

func validRequest() *Request {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	return &Request{
		UserID:    42,
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
}

func TestExecute(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, HourlyRate: 50, IsAvailable: true}}

	uc := newUseCase(bookings, courts, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 100.0, resp.TotalPrice)

	require.NotNil(t, bookings.created)
	assert.Equal(t, int64(42), bookings.created.UserID)
}

func TestExecuteCourtNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{err: courtRepo.ErrCourtNotFound}

	uc := newUseCase(bookings, courts, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecuteCourtUnavailable(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, HourlyRate: 50, IsAvailable: false}}

	uc := newUseCase(bookings, courts, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtUnavailable)
	assert.Nil(t, bookings.created)
}

func TestExecuteTimeSlotTaken(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{
			{ID: 7, CourtID: 1, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.StatusConfirmed},
		},
	}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, HourlyRate: 50, IsAvailable: true}}

	uc := newUseCase(bookings, courts, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
	assert.Nil(t, bookings.created)
}

func TestExecuteSerializationConflict(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, HourlyRate: 50, IsAvailable: true}}

	uc := newUseCase(bookings, courts, &fakeTxManager{forcedErr: txmanager.ErrSerializationFailure})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConcurrentConflict)
}

func TestExecuteValidation(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, HourlyRate: 50, IsAvailable: true}}

	uc := newUseCase(bookings, courts, &fakeTxManager{})

	// Конец раньше начала
	req := validRequest()
	req.EndTime = req.StartTime.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Нулевой интервал
	req = validRequest()
	req.EndTime = req.StartTime
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректный пользователь
	req = validRequest()
	req.UserID = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
