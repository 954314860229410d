package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

var columns = []string{
	"id", "user_id", "vehicle_plate_number", "location", "state", "services",
	"private", "comment", "start_date", "end_date", "email", "first_name",
}

func TestDeleteWithin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 24, 23, 59, 59, 0, time.UTC)
	resStart := time.Date(2026, 12, 24, 8, 0, 0, 0, time.UTC)
	resEnd := time.Date(2026, 12, 24, 11, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM reservations r JOIN users u ON u.id = r.user_id WHERE r.start_date > \\$1 AND r.end_date < \\$2 FOR UPDATE OF r").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("r-1", "u-1", "ABC123", "M/-1/42", 0, "{0,3}", true, nil, resStart, resEnd, "dana@example.com", "Dana").
			AddRow("r-2", "u-2", "XYZ987", nil, 1, "{1}", false, "keys at desk", resStart, resEnd, "lee@example.com", "Lee"))

	mock.ExpectExec("DELETE FROM reservations WHERE id IN \\(\\$1,\\$2\\)").
		WithArgs("r-1", "r-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	owners, err := NewRepository(db).DeleteWithin(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, owners, 2)

	assert.Equal(t, "dana@example.com", owners[0].Email)
	assert.Equal(t, []domain.ServiceType{domain.ServiceExterior, domain.ServiceSpotCleaning}, owners[0].Reservation.Services)
	assert.Equal(t, "M/-1/42", owners[0].Reservation.Location)
	assert.True(t, owners[0].Reservation.Private)
	assert.Equal(t, domain.StateReminderSentWaitingForKey, owners[1].Reservation.State)
	assert.Equal(t, "keys at desk", owners[1].Reservation.Comment)
	require.NotNil(t, owners[1].Reservation.EndDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithinNothingToDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM reservations r").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(columns))

	owners, err := NewRepository(db).DeleteWithin(context.Background(), start, end)
	require.NoError(t, err)
	assert.Empty(t, owners)
	assert.NoError(t, mock.ExpectationsWereMet())
}
