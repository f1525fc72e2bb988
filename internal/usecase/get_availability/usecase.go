package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
)

// UseCase use case для расчета сетки доступности корта на дату
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	hours       domain.OperatingHours
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	hours domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		hours:       hours,
		logger:      logger,
	}
}

// Execute выполняет use case расчета доступности
// Сетка строится по рабочим часам, активные бронирования на дату читаются
// одним запросом. Результат является снимком на момент чтения и не
// блокирует конкурентные операции записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что корт существует
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Строим сетку слотов на дату по рабочим часам
	slots, err := buildSlotGrid(req.Date, uc.hours)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	// 4. Закрытый корт не принимает бронирования, все слоты заняты
	if !court.CanAcceptBookings() {
		for i := range slots {
			slots[i].IsAvailable = false
		}
		return &Response{CourtID: req.CourtID, Date: req.Date, Slots: slots}, nil
	}

	// 5. Читаем активные бронирования на весь день одним запросом
	if len(slots) > 0 {
		dayStart := slots[0].StartTime
		dayEnd := slots[len(slots)-1].EndTime

		bookings, err := uc.bookingRepo.GetActiveByCourtAndRange(ctx, req.CourtID, dayStart, dayEnd, nil)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get bookings for court=%d: %v", req.CourtID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6. Помечаем слоты, пересекающиеся с активными бронированиями
		markOccupied(slots, bookings)
	}

	uc.logger.Info("GetAvailability: court=%d, date=%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
