package payments

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
