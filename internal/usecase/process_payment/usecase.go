package process_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

// UseCase use case для проведения платежа
type UseCase struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case проведения платежа
// Для платежа за бронирование запись платежа и подтверждение бронирования
// выполняются в одной сериализуемой транзакции: либо обе записи, либо ни одной.
// Недопустимый переход статуса откатывает транзакцию целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessPayment: user=%d, amount=%.2f, type=%s", req.UserID, req.Amount, req.Type)

	// 1. Валидация входных данных
	paymentType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ProcessPayment: validation failed: %v", err)
		return nil, err
	}

	payment := &domain.Payment{
		UserID:        req.UserID,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Status:        domain.PaymentStatusCompleted,
		Type:          paymentType,
		TransactionID: newTransactionID(),
		PaymentDate:   time.Now().UTC(),
	}

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Платеж за бронирование подтверждает бронирование
		if payment.BookingID != nil {
			booking, err := uc.bookingRepo.GetByID(txCtx, *payment.BookingID)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					uc.logger.Warn("ProcessPayment: booking id=%d not found", *payment.BookingID)
					return ErrBookingNotFound
				}
				uc.logger.Error("ProcessPayment: failed to get booking id=%d: %v", *payment.BookingID, err)
				return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
			}

			if booking.UserID != req.UserID {
				uc.logger.Warn("ProcessPayment: access denied for user=%d to booking id=%d",
					req.UserID, booking.ID)
				return ErrAccessDenied
			}

			if !booking.CanTransitionTo(domain.StatusConfirmed) {
				uc.logger.Warn("ProcessPayment: booking id=%d is %s and cannot be confirmed",
					booking.ID, booking.Status)
				return ErrInvalidTransition
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
				uc.logger.Error("ProcessPayment: failed to confirm booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
			}
		}

		// 2.2. Записываем платеж
		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			uc.logger.Error("ProcessPayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		payment = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("ProcessPayment: serialization conflict for user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("ProcessPayment: successfully processed payment id=%d, transaction=%s",
		payment.ID, payment.TransactionID)

	return &Response{
		ID:            payment.ID,
		UserID:        payment.UserID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		Type:          string(payment.Type),
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		CreatedAt:     payment.CreatedAt,
	}, nil
}

// newTransactionID генерирует идентификатор транзакции, 32 hex-символа без дефисов
func newTransactionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
