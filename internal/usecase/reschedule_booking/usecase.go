package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

// UseCase use case для переноса бронирования на новый интервал
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	pricing     PricingEngine
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	pricing PricingEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		pricing:     pricing,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case переноса бронирования
// Проверка доступности нового интервала (исключая собственный интервал
// бронирования), пересчёт стоимости и запись выполняются в одной
// сериализуемой транзакции: интервал и цена меняются только вместе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%d, booking=%d, interval=[%s, %s)",
		req.UserID, req.BookingID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Перенести можно только своё бронирование
		if booking.UserID != req.UserID {
			uc.logger.Warn("RescheduleBooking: access denied for user=%d to booking id=%d",
				req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Терминальные бронирования не переносятся
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d is %s and cannot be rescheduled",
				req.BookingID, booking.Status)
			return ErrBookingFinalized
		}

		// 2.4. Проверяем доступность нового интервала, игнорируя собственный
		// прежний интервал бронирования
		overlapping, err := uc.bookingRepo.GetActiveByCourtAndRange(
			txCtx, booking.CourtID, req.StartTime, req.EndTime, ptr.Ptr(booking.ID))
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("RescheduleBooking: new interval conflicts with %d active booking(s) on court=%d",
				len(overlapping), booking.CourtID)
			return ErrTimeSlotTaken
		}

		// 2.5. Пересчитываем стоимость по ставке корта
		court, err := uc.courtRepo.GetByID(txCtx, booking.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Error("RescheduleBooking: court id=%d not found for booking id=%d",
					booking.CourtID, req.BookingID)
				return ErrCourtNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get court id=%d: %v", booking.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		price, err := uc.pricing.Price(court.HourlyRate, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 2.6. Интервал и стоимость меняются одним запросом
		if err := uc.bookingRepo.UpdateInterval(txCtx, booking.ID, req.StartTime, req.EndTime, price); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update interval for booking id=%d: %v",
				req.BookingID, err)
			return fmt.Errorf("%w: failed to update interval: %v", ErrInternal, err)
		}

		booking.StartTime = req.StartTime
		booking.EndTime = req.EndTime
		booking.TotalPrice = price

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("RescheduleBooking: serialization conflict for booking=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d, price=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		CourtID:    result.CourtID,
		UserID:     result.UserID,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		TotalPrice: result.TotalPrice,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
