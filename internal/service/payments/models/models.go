package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Response модели

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	BookingID     *int64    `json:"bookingId,omitempty"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	TransactionID string    `json:"transactionId"`
	PaymentDate   time.Time `json:"paymentDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// PaymentSummaryResponse сводка платежей пользователя
// Суммы считаются только по завершенным платежам
type PaymentSummaryResponse struct {
	TotalSpent     float64            `json:"totalSpent"`
	PaymentCount   int                `json:"paymentCount"`
	ByType         map[string]float64 `json:"byType"`
	RecentPayments []PaymentResponse  `json:"recentPayments"`
}

// Методы конвертации

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		Type:          string(p.Type),
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
	}
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, payment := range payments {
		if paymentResp := FromDomainPayment(payment); paymentResp != nil {
			resp.Payments = append(resp.Payments, *paymentResp)
		}
	}

	return resp
}
