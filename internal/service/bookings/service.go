package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования
// Переход проверяется по жизненному циклу: pending -> confirmed -> completed,
// отмена возможна из pending и confirmed. Терминальные статусы не меняются.
// Чтение статуса и запись перехода выполняются в одной сериализуемой
// транзакции с блокировкой строки - иначе два конкурентных перехода
// провалидируются по одному устаревшему статусу и оба запишутся
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Валидируем и конвертируем статус
	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой строки
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		// Менять можно только своё бронирование
		if booking.UserID != req.UserID {
			s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		// Проверяем допустимость перехода
		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
				booking.Status, newStatus, bookingID)
			return ErrInvalidTransition
		}

		// Обновляем статус
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			s.logger.Warn("UpdateStatus: serialization conflict for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrConcurrentConflict, err)
		}
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Delete удаляет бронирование
// Пользователь может удалить только своё бронирование
func (s *Service) Delete(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, userID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", userID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found during delete", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}
