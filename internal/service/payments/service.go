package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtService/internal/service/payments/models"
)

// recentPaymentsLimit количество последних платежей в сводке
const recentPaymentsLimit = 5

// Service сервис для работы с платежами
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает платеж по ID
// Пользователь может видеть только свой платеж
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.PaymentResponse, error) {
	s.logger.Info("GetByID: fetching payment id=%d for user=%d", id, userID)

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if payment.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to payment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched payment id=%d", id)
	return models.FromDomainPayment(payment), nil
}

// GetUserPayments получает историю платежей пользователя, новые первыми
func (s *Service) GetUserPayments(ctx context.Context, userID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("GetUserPayments: fetching payments for user=%d", userID)

	payments, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserPayments: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserPayments: successfully fetched %d payments for user=%d", len(payments), userID)
	return models.FromDomainPaymentList(payments), nil
}

// GetUserSummary строит сводку платежей пользователя
// Суммы и количество считаются только по завершенным платежам,
// последние платежи берутся из всей истории
func (s *Service) GetUserSummary(ctx context.Context, userID int64) (*models.PaymentSummaryResponse, error) {
	s.logger.Info("GetUserSummary: building summary for user=%d", userID)

	payments, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserSummary: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserSummary - repository error: %v", ErrInternal, err)
	}

	summary := &models.PaymentSummaryResponse{
		ByType:         make(map[string]float64),
		RecentPayments: make([]models.PaymentResponse, 0, recentPaymentsLimit),
	}

	for _, payment := range payments {
		if payment.Status == domain.PaymentStatusCompleted {
			summary.TotalSpent += payment.Amount
			summary.PaymentCount++
			summary.ByType[string(payment.Type)] += payment.Amount
		}

		if len(summary.RecentPayments) < recentPaymentsLimit {
			summary.RecentPayments = append(summary.RecentPayments, *models.FromDomainPayment(payment))
		}
	}

	// Суммы приводятся к копейкам, чтобы не накапливать погрешность float64
	summary.TotalSpent = roundToCents(summary.TotalSpent)
	for paymentType, amount := range summary.ByType {
		summary.ByType[paymentType] = roundToCents(amount)
	}

	s.logger.Info("GetUserSummary: user=%d, completed payments=%d, total=%.2f",
		userID, summary.PaymentCount, summary.TotalSpent)

	return summary, nil
}

// roundToCents округляет сумму до копеек банковским округлением
func roundToCents(amount float64) float64 {
	return math.RoundToEven(amount*100) / 100
}
