// Package txmanager менеджер транзакций поверх инструментированного dbmetrics.DB
//
// Транзакция передается в context; репозитории достают её через
// dbmetrics.GetExecutor и выполняют запросы в её рамках.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
)

// maxSerializableRetries максимальное количество повторов сериализуемой
// транзакции при конфликте сериализации
const maxSerializableRetries = 3

var (
	// ErrSerializationFailure возвращается, когда сериализуемая транзакция
	// проиграла гонку конкурентному писателю и исчерпала повторы
	ErrSerializationFailure = errors.New("txmanager: serialization failure after retries")

	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner интерфейс для начала транзакций
// Реализуется *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции read committed
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// Конфликты сериализации (SQLSTATE 40001/40P01) повторяются до
// maxSerializableRetries раз; после исчерпания повторов возвращается
// ErrSerializationFailure, и решение о повторе остается за вызывающим
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		if attempt > 0 {
			// Небольшая пауза перед повтором, чтобы развести конкурентов
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			}
		}

		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrSerializationFailure, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// IsSerializationFailure возвращает true для ошибок конфликта сериализации
// PostgreSQL: 40001 (serialization_failure) и 40P01 (deadlock_detected)
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
