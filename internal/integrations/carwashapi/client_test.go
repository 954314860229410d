package carwashapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, context.Context) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop()), WithToken(context.Background(), "token-1")
}

func TestGetLastSettings(t *testing.T) {
	client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/lastsettings", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"vehiclePlateNumber":"ABC123","location":"M/1/2","services":[0,3,99]}`))
	})

	settings, err := client.GetLastSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", settings.VehiclePlateNumber)
	assert.Equal(t, []domain.ServiceType{domain.ServiceExterior, domain.ServiceSpotCleaning}, settings.Services)
}

func TestGetNotAvailable(t *testing.T) {
	client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dates":["2026-10-15T00:00:00"],"times":["2026-10-16T08:00:00","2026-10-16T11:00:00+02:00"]}`))
	})

	na, err := client.GetNotAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, na.Dates, 1)
	require.Len(t, na.Times, 2)
	assert.Equal(t, 15, na.Dates[0].Day())
	assert.Equal(t, 8, na.Times[0].Hour())
}

func TestGetCapacity(t *testing.T) {
	client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-10-16", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[{"startTime":"2026-10-16T08:00:00","freeCapacity":2},{"startTime":"2026-10-16T11:00:00","freeCapacity":0}]`))
	})

	capacity, err := client.GetCapacity(ctx, time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, capacity, 2)
	assert.Equal(t, 2, capacity[0].FreeCapacity)
	assert.Equal(t, 11, capacity[1].StartTime.Hour())
}

func TestCreateReservation(t *testing.T) {
	client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body Reservation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ABC123", body.VehiclePlateNumber)
		assert.Equal(t, []int{0, 1}, body.Services)

		body.ID = "r-1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})

	created, err := client.CreateReservation(ctx, &domain.Reservation{
		VehiclePlateNumber: "ABC123",
		Services:           []domain.ServiceType{domain.ServiceExterior, domain.ServiceInterior},
		StartDate:          time.Date(2026, 10, 16, 8, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", created.ID)
	assert.Equal(t, 8, created.StartDate.Hour())
}

func TestGetActiveReservationsFiltersDone(t *testing.T) {
	client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"a","state":0,"services":[0],"startDate":"2026-10-16T08:00:00"},
			{"id":"b","state":5,"services":[0],"startDate":"2026-10-01T08:00:00"}
		]`))
	})

	reservations, err := client.GetActiveReservations(ctx)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "a", reservations[0].ID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		authErr bool
		message string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, authErr: true},
		{name: "forbidden", status: http.StatusForbidden, authErr: true},
		{name: "json string body", status: http.StatusBadRequest, body: `"Reservation can be made to slots with free capacity."`, message: "Reservation can be made to slots with free capacity."},
		{name: "message object", status: http.StatusBadRequest, body: `{"message":"Plate number is required."}`, message: "Plate number is required."},
		{name: "empty body", status: http.StatusInternalServerError, message: "The car wash service answered with status 500."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ctx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetLastSettings(ctx)
			require.Error(t, err)
			if tt.authErr {
				assert.ErrorIs(t, err, domain.ErrAuthExpired)
				return
			}
			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestMissingTokenIsAuthExpired(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GetNotAvailable(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthExpired)
	assert.False(t, called)
}
