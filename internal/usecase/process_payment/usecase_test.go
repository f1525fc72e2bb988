package process_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct {
	forcedErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	return fn(ctx)
}

type fakePaymentRepo struct {
	created *domain.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	payment.ID = 1
	payment.CreatedAt = time.Now()
	r.created = payment
	return payment, nil
}

type fakeBookingRepo struct {
	booking       *domain.Booking
	err           error
	updatedStatus *domain.BookingStatus
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.updatedStatus = &status
	return nil
}

func TestExecuteBookingPayment(t *testing.T) {
	payments := &fakePaymentRepo{}
	bookings := &fakeBookingRepo{
		booking: &domain.Booking{ID: 10, UserID: 42, Status: domain.StatusPending, TotalPrice: 100},
	}

	uc := NewUseCase(payments, bookings, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: ptr.Ptr(int64(10)),
		Amount:    100,
		Type:      "booking",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentStatusCompleted), resp.Status)
	assert.Len(t, resp.TransactionID, 32)
	assert.NotContains(t, resp.TransactionID, "-")

	// Бронирование подтверждено в той же операции
	require.NotNil(t, bookings.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *bookings.updatedStatus)
}

func TestExecuteMembershipPaymentWithoutBooking(t *testing.T) {
	payments := &fakePaymentRepo{}
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(payments, bookings, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42,
		Amount: 500,
		Type:   "membership",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.BookingID)
	assert.Equal(t, string(domain.PaymentTypeMembership), resp.Type)
	assert.Nil(t, bookings.updatedStatus)
}

func TestExecuteBookingPaymentRequiresBookingID(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42,
		Amount: 100,
		Type:   "booking",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteInvalidTransitionAbortsPayment(t *testing.T) {
	payments := &fakePaymentRepo{}
	bookings := &fakeBookingRepo{
		booking: &domain.Booking{ID: 10, UserID: 42, Status: domain.StatusCancelled},
	}

	uc := NewUseCase(payments, bookings, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: ptr.Ptr(int64(10)),
		Amount:    100,
		Type:      "booking",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Ни платеж, ни статус не записаны
	assert.Nil(t, payments.created)
	assert.Nil(t, bookings.updatedStatus)
}

func TestExecuteBookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}

	uc := NewUseCase(&fakePaymentRepo{}, bookings, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: ptr.Ptr(int64(99)),
		Amount:    100,
		Type:      "booking",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteForeignBooking(t *testing.T) {
	bookings := &fakeBookingRepo{
		booking: &domain.Booking{ID: 10, UserID: 7, Status: domain.StatusPending},
	}

	uc := NewUseCase(&fakePaymentRepo{}, bookings, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: ptr.Ptr(int64(10)),
		Amount:    100,
		Type:      "booking",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteInvalidAmount(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Amount: 0, Type: "other"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 42, Amount: -5, Type: "other"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteUnknownPaymentType(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Amount: 100, Type: "subscription"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteSerializationConflict(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeTxManager{forcedErr: txmanager.ErrSerializationFailure}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Amount: 100, Type: "other"})
	assert.ErrorIs(t, err, ErrConcurrentConflict)
}
