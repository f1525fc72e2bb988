package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	active []*domain.Booking
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

func defaultHours() domain.OperatingHours {
	return domain.OperatingHours{
		OpenTime:            types.TimeString("08:00"),
		CloseTime:           types.TimeString("22:00"),
		SlotDurationMinutes: 60,
	}
}

func date() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func TestExecuteGrid(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, IsAvailable: true}}

	uc := NewUseCase(bookings, courts, defaultHours(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date()})
	require.NoError(t, err)

	// 08:00 - 22:00 с шагом час: 14 слотов
	require.Len(t, resp.Slots, 14)

	first := resp.Slots[0]
	assert.Equal(t, time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), first.EndTime)

	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, time.Date(2025, 10, 15, 21, 0, 0, 0, time.UTC), last.StartTime)
	assert.Equal(t, time.Date(2025, 10, 15, 22, 0, 0, 0, time.UTC), last.EndTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecuteMarksOccupiedSlots(t *testing.T) {
	// Бронирование 10:30 - 12:30 задевает слоты 10:00, 11:00 и 12:00
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{
			{
				ID:        7,
				CourtID:   1,
				StartTime: time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, IsAvailable: true}}

	uc := NewUseCase(bookings, courts, defaultHours(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date()})
	require.NoError(t, err)

	occupied := map[int]bool{}
	for i, slot := range resp.Slots {
		if !slot.IsAvailable {
			occupied[i] = true
		}
	}

	// Слоты с индексами 2 (10:00), 3 (11:00) и 4 (12:00) заняты
	assert.Equal(t, map[int]bool{2: true, 3: true, 4: true}, occupied)
}

func TestExecuteBoundaryBookingDoesNotBlockNeighbour(t *testing.T) {
	// Бронирование 10:00 - 11:00 занимает ровно один слот
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{
			{
				ID:        7,
				CourtID:   1,
				StartTime: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
				Status:    domain.StatusPending,
			},
		},
	}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, IsAvailable: true}}

	uc := NewUseCase(bookings, courts, defaultHours(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date()})
	require.NoError(t, err)

	for i, slot := range resp.Slots {
		if i == 2 {
			assert.False(t, slot.IsAvailable, "slot 10:00 must be occupied")
		} else {
			assert.True(t, slot.IsAvailable, "slot %d must stay available", i)
		}
	}
}

func TestExecuteUnavailableCourt(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 1, IsAvailable: false}}

	uc := NewUseCase(bookings, courts, defaultHours(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date()})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.IsAvailable)
	}
}

func TestExecuteCourtNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{err: courtRepo.ErrCourtNotFound}

	uc := NewUseCase(bookings, courts, defaultHours(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 99, Date: date()})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestBuildSlotGridDropsPartialSlot(t *testing.T) {
	hours := domain.OperatingHours{
		OpenTime:            types.TimeString("08:00"),
		CloseTime:           types.TimeString("09:30"),
		SlotDurationMinutes: 60,
	}

	slots, err := buildSlotGrid(date(), hours)
	require.NoError(t, err)

	// Неполный слот 09:00 - 10:00 не помещается до закрытия
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), slots[0].StartTime)
}
