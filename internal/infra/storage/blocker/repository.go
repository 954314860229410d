package blocker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CarWashBot/pkg/txmanager"
)

const blockersTable = "blockers"

var blockerColumns = []string{
	"id",
	"start_date",
	"end_date",
	"comment",
	"created_by",
	"created_at",
}

// Repository репозиторий для работы с блокировками бронирований
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет блокировку. ID генерируется вызывающей стороной.
func (r *Repository) Create(ctx context.Context, blocker *domain.Blocker) (*domain.Blocker, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(blockersTable).
		Columns("id", "start_date", "end_date", "comment", "created_by").
		Values(blocker.ID, blocker.StartDate, blocker.EndDate, nullString(blocker.Comment), blocker.CreatedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocker.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return blocker, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Blocker, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockerColumns...).
		From(blockersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	blocker, err := scanBlocker(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocker: %v", ErrScanRow, err)
	}
	return blocker, nil
}

// List возвращает все блокировки, начиная с самых поздних
func (r *Repository) List(ctx context.Context) ([]*domain.Blocker, error) {
	return r.query(ctx, "List", psqlbuilder.Select(blockerColumns...).
		From(blockersTable).
		OrderBy("start_date DESC"))
}

// ListOverlapping возвращает блокировки, пересекающиеся с интервалом (start, end).
// Интервалы, которые только соприкасаются границами, не пересекаются.
func (r *Repository) ListOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Blocker, error) {
	return r.query(ctx, "ListOverlapping", psqlbuilder.Select(blockerColumns...).
		From(blockersTable).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		Suffix("FOR UPDATE"))
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(blockersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrBlockerNotFound
	}
	return nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Blocker, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blockers := make([]*domain.Blocker, 0)
	for rows.Next() {
		blocker, err := scanBlocker(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan blocker: %v", ErrScanRow, op, err)
		}
		blockers = append(blockers, blocker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return blockers, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBlocker(row scanner) (*domain.Blocker, error) {
	var (
		blocker domain.Blocker
		endDate sql.NullTime
		comment sql.NullString
	)
	err := row.Scan(
		&blocker.ID,
		&blocker.StartDate,
		&endDate,
		&comment,
		&blocker.CreatedBy,
		&blocker.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		blocker.EndDate = &endDate.Time
	}
	blocker.Comment = comment.String
	return &blocker, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
