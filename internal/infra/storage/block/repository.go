package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/dbmetrics"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/psqlbuilder"
)

const tableName = "time_blocks"

var columns = []string{
	"id",
	"professional_id",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий ручных блокировок времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForDate возвращает блокировки мастера и общие блокировки салона,
// диапазон дат которых включает date
func (r *Repository) ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.TimeBlock, error) {
	return r.ListByFilter(ctx, domain.BlocksFilter{ProfessionalID: &professionalID, Date: &date})
}

// ListByFilter получает блокировки с фильтрацией
// Фильтр по мастеру всегда включает общие блокировки салона (professional_id IS NULL)
func (r *Repository) ListByFilter(ctx context.Context, filter domain.BlocksFilter) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_date ASC", "start_time ASC NULLS FIRST")

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"professional_id": *filter.ProfessionalID},
			squirrel.Eq{"professional_id": nil},
		})
	}
	if filter.Date != nil {
		date := domain.DateOnly(*filter.Date)
		selectBuilder = selectBuilder.
			Where(squirrel.LtOrEq{"start_date": date}).
			Where(squirrel.GtOrEq{"end_date": date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.TimeBlock, 0)
	for rows.Next() {
		var b domain.TimeBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ProfessionalID,
			&b.StartDate,
			&b.EndDate,
			&b.StartTime,
			&b.EndTime,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByFilter - scan row: %w", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, b *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("professional_id", "start_date", "end_date", "start_time", "end_time", "reason").
		Values(b.ProfessionalID, b.StartDate, b.EndDate, b.StartTime, b.EndTime, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time

	return b, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
