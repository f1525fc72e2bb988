package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Критическая секция check-then-insert (чтение активных бронирований корта,
// проверка пересечений, вставка) выполняется в сериализуемой транзакции:
// из двух конкурентных бронирований пересекающихся интервалов успешным
// будет ровно одно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, interval=[%s, %s)",
		req.UserID, req.CourtID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем корт и проверяем, что он открыт для бронирования
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		if !court.CanAcceptBookings() {
			uc.logger.Warn("CreateBooking: court id=%d is not available", req.CourtID)
			return ErrCourtUnavailable
		}

		// 2.2. Получаем активные бронирования корта, пересекающиеся с интервалом,
		// с блокировкой строк (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetActiveByCourtAndRange(txCtx, req.CourtID, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.3. Любое активное пересечение блокирует интервал целиком
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: interval conflicts with %d active booking(s) on court=%d",
				len(overlapping), req.CourtID)
			return ErrTimeSlotTaken
		}

		// 2.4. Считаем стоимость по ставке корта
		price, err := uc.pricing.Price(court.HourlyRate, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 2.5. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			CourtID:    req.CourtID,
			UserID:     req.UserID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusPending,
			TotalPrice: price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Проигранная гонка - отдельная ошибка: повтор запроса безопасен,
		// проверка доступности выполнится заново
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for court=%d: %v", req.CourtID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.TotalPrice)

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
