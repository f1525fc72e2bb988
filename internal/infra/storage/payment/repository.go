package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// paymentColumns общий набор колонок для SELECT запросов
var paymentColumns = []string{
	"id",
	"user_id",
	"booking_id",
	"amount",
	"status",
	"type",
	"transaction_id",
	"payment_date",
	"created_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый платеж
// При подтверждении бронирования вызывается в одной транзакции
// с обновлением статуса бронирования
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"user_id",
			"booking_id",
			"amount",
			"status",
			"type",
			"transaction_id",
			"payment_date",
		).
		Values(
			payment.UserID,
			payment.BookingID,
			payment.Amount,
			payment.Status,
			payment.Type,
			payment.TransactionID,
			payment.PaymentDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetByID получает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var payment domain.Payment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Status,
		&payment.Type,
		&payment.TransactionID,
		&payment.PaymentDate,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}

	payment.CreatedAt = createdAt.Time

	return &payment, nil
}

// GetByUserID получает платежи пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("payment_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.BookingID,
			&payment.Amount,
			&payment.Status,
			&payment.Type,
			&payment.TransactionID,
			&payment.PaymentDate,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time

		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
