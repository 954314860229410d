package blocker

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

var columns = []string{"id", "start_date", "end_date", "comment", "created_by", "created_at"}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 26, 23, 59, 59, 0, time.UTC)
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO blockers \\(id,start_date,end_date,comment,created_by\\)").
		WithArgs("b-1", sqlmock.AnyArg(), sqlmock.AnyArg(), "Christmas", "admin-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	blocker, err := NewRepository(db).Create(context.Background(), &domain.Blocker{
		ID:        "b-1",
		StartDate: start,
		EndDate:   &end,
		Comment:   "Christmas",
		CreatedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, created, blocker.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM blockers WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBlockerNotFound)

	mock.ExpectQuery("SELECT (.+) FROM blockers WHERE id = \\$1").
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("b-1", start, nil, nil, "admin-1", start))
	blocker, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", blocker.ID)
	assert.Nil(t, blocker.EndDate)
	assert.Empty(t, blocker.Comment)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersByStartDesc(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	later := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM blockers ORDER BY start_date DESC").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("b-2", later, later, "Christmas", "admin-1", later).
			AddRow("b-1", earlier, earlier, "Maintenance", "admin-1", earlier))

	blockers, err := NewRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, blockers, 2)
	assert.Equal(t, "b-2", blockers[0].ID)
	assert.Equal(t, "Maintenance", blockers[1].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 24, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM blockers WHERE start_date < \\$1 AND end_date > \\$2 FOR UPDATE").
		WithArgs(end, start).
		WillReturnRows(sqlmock.NewRows(columns))

	blockers, err := NewRepository(db).ListOverlapping(context.Background(), start, end)
	require.NoError(t, err)
	assert.Empty(t, blockers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM blockers WHERE id = \\$1").
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "b-1"))

	mock.ExpectExec("DELETE FROM blockers WHERE id = \\$1").
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "b-1"), ErrBlockerNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
