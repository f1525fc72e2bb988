// Package simpletxmanager менеджер транзакций поверх обычного *sql.DB
// Используется, когда метрики выключены; семантика идентична pkg/txmanager
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

const maxSerializableRetries = 3

// TransactionManager менеджер транзакций без метрик
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
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

// DoSerializable выполняет fn в сериализуемой транзакции с повторами
// при конфликтах сериализации (см. pkg/txmanager)
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		if attempt > 0 {
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
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", txmanager.ErrSerializationFailure, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", txmanager.ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if txmanager.IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", txmanager.ErrCommitTx, err)
	}

	return nil
}
