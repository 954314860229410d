package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CarWashBot/pkg/txmanager"
)

// Repository репозиторий бронирований автомойки.
// Бот создаёт бронирования через API, здесь только операции администратора.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// DeleteWithin удаляет бронирования, целиком лежащие строго внутри (start, end),
// и возвращает их вместе с контактами владельцев.
// Должен вызываться внутри транзакции: строки блокируются до удаления.
func (r *Repository) DeleteWithin(ctx context.Context, start, end time.Time) ([]domain.ReservationOwner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.user_id",
		"r.vehicle_plate_number",
		"r.location",
		"r.state",
		"r.services",
		"r.private",
		"r.comment",
		"r.start_date",
		"r.end_date",
		"u.email",
		"u.first_name",
	).
		From("reservations r").
		Join("users u ON u.id = r.user_id").
		Where(squirrel.Gt{"r.start_date": start}).
		Where(squirrel.Lt{"r.end_date": end}).
		Suffix("FOR UPDATE OF r").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteWithin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteWithin - execute select: %v", ErrExecQuery, err)
	}

	owners, err := scanOwners(rows)
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return owners, nil
	}

	ids := make([]string, 0, len(owners))
	for _, o := range owners {
		ids = append(ids, o.Reservation.ID)
	}

	query, args, err = psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteWithin - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: DeleteWithin - execute delete: %v", ErrExecQuery, err)
	}

	return owners, nil
}

func scanOwners(rows *sql.Rows) ([]domain.ReservationOwner, error) {
	defer rows.Close()

	owners := make([]domain.ReservationOwner, 0)
	for rows.Next() {
		var (
			owner    domain.ReservationOwner
			res      = &owner.Reservation
			location sql.NullString
			comment  sql.NullString
			endDate  sql.NullTime
			services []int64
		)
		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.VehiclePlateNumber,
			&location,
			&res.State,
			pq.Array(&services),
			&res.Private,
			&comment,
			&res.StartDate,
			&endDate,
			&owner.Email,
			&owner.FirstName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: DeleteWithin - scan reservation: %v", ErrScanRow, err)
		}

		res.Location = location.String
		res.Comment = comment.String
		if endDate.Valid {
			res.EndDate = &endDate.Time
		}
		for _, id := range services {
			res.Services = append(res.Services, domain.ServiceType(id))
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DeleteWithin - iterate rows: %v", ErrScanRow, err)
	}
	return owners, nil
}
