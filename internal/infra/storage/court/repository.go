package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кортами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый корт
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns(
			"name",
			"description",
			"is_indoor",
			"hourly_rate",
			"is_available",
		).
		Values(
			court.Name,
			court.Description,
			court.IsIndoor,
			court.HourlyRate,
			court.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"is_indoor",
		"hourly_rate",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.Description,
		&court.IsIndoor,
		&court.HourlyRate,
		&court.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// List получает список кортов
// При onlyAvailable=true возвращает только корты, открытые для бронирования
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"is_indoor",
		"hourly_rate",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("courts").
		OrderBy("id ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Description,
			&court.IsIndoor,
			&court.HourlyRate,
			&court.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		court.CreatedAt = createdAt.Time
		court.UpdatedAt = updatedAt.Time

		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// Update обновляет данные корта
func (r *Repository) Update(ctx context.Context, court *domain.Court) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("name", court.Name).
		Set("description", court.Description).
		Set("hourly_rate", court.HourlyRate).
		Set("is_available", court.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": court.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}
