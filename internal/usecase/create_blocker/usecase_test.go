package create_blocker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/mailer"
	"github.com/m04kA/SMC-CarWashBot/pkg/logger"
)

type fakeBlockerRepo struct {
	overlapping []*domain.Blocker
	created     *domain.Blocker
	createErr   error
}

func (f *fakeBlockerRepo) Create(_ context.Context, blocker *domain.Blocker) (*domain.Blocker, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	blocker.CreatedAt = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	f.created = blocker
	return blocker, nil
}

func (f *fakeBlockerRepo) ListOverlapping(_ context.Context, _, _ time.Time) ([]*domain.Blocker, error) {
	return f.overlapping, nil
}

type fakeReservationRepo struct {
	owners     []domain.ReservationOwner
	start, end time.Time
}

func (f *fakeReservationRepo) DeleteWithin(_ context.Context, start, end time.Time) ([]domain.ReservationOwner, error) {
	f.start, f.end = start, end
	return f.owners, nil
}

type fakeMailer struct {
	sent []mailer.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, email mailer.Email) error {
	f.sent = append(f.sent, email)
	return f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	created int
}

func (f *fakeMetrics) IncBlockersCreated() {
	f.created++
}

type fixture struct {
	uc           *UseCase
	blockers     *fakeBlockerRepo
	reservations *fakeReservationRepo
	mailer       *fakeMailer
	tx           *fakeTxManager
	metrics      *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		blockers:     &fakeBlockerRepo{},
		reservations: &fakeReservationRepo{},
		mailer:       &fakeMailer{},
		tx:           &fakeTxManager{},
		metrics:      &fakeMetrics{},
	}
	f.uc = NewUseCase(f.blockers, f.reservations, f.mailer, f.tx, f.metrics, "carwash@example.com", logger.NewNop())
	return f
}

var carwashAdmin = &domain.AdminUser{ID: "admin-1", IsCarwashAdmin: true}

func TestCreateBlockerDefaultsEndToEndOfDay(t *testing.T) {
	f := newFixture()
	start := time.Date(2026, 12, 24, 6, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{User: carwashAdmin, StartDate: start, Comment: "Christmas"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, time.Date(2026, 12, 24, 23, 59, 59, 0, time.UTC), resp.EndDate)
	assert.Equal(t, "admin-1", resp.CreatedBy)
	assert.Equal(t, start, f.reservations.start)
	assert.Equal(t, resp.EndDate, f.reservations.end)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics.created)
}

func TestCreateBlockerNotifiesOwners(t *testing.T) {
	f := newFixture()
	f.reservations.owners = []domain.ReservationOwner{{
		Reservation: domain.Reservation{
			ID:                 "r-1",
			VehiclePlateNumber: "ABC123",
			StartDate:          time.Date(2026, 12, 24, 8, 0, 0, 0, time.UTC),
		},
		Email:     "dana@example.com",
		FirstName: "Dana",
	}}
	f.mailer.err = errors.New("smtp down")

	resp, err := f.uc.Execute(context.Background(), &Request{
		User:      carwashAdmin,
		StartDate: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
	})

	// ошибка отправки письма не отменяет создание блокировки
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DeletedReservations)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "dana@example.com", f.mailer.sent[0].To)
	assert.Equal(t, deletedSubject, f.mailer.sent[0].Subject)
	assert.Contains(t, f.mailer.sent[0].Body, "Hi Dana,")
	assert.Contains(t, f.mailer.sent[0].Body, "December 24, 8:00 AM for your car (ABC123)")
	assert.Contains(t, f.mailer.sent[0].Body, "carwash@example.com")
}

func TestCreateBlockerErrors(t *testing.T) {
	start := time.Date(2026, 12, 24, 8, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name    string
		req     *Request
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:    "not a carwash admin",
			req:     &Request{User: &domain.AdminUser{ID: "u", IsAdmin: true}, StartDate: start},
			wantErr: ErrForbidden,
		},
		{
			name:    "no user",
			req:     &Request{StartDate: start},
			wantErr: ErrForbidden,
		},
		{
			name:    "missing start",
			req:     &Request{User: carwashAdmin},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			req:     &Request{User: carwashAdmin, StartDate: start, EndDate: &before},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "end equals start",
			req:     &Request{User: carwashAdmin, StartDate: start, EndDate: &start},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "overlapping",
			req:  &Request{User: carwashAdmin, StartDate: start},
			setup: func(f *fixture) {
				f.blockers.overlapping = []*domain.Blocker{{ID: "b-0"}}
			},
			wantErr: ErrOverlapping,
		},
		{
			name: "repository failure",
			req:  &Request{User: carwashAdmin, StartDate: start},
			setup: func(f *fixture) {
				f.blockers.createErr = errors.New("db down")
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.metrics.created)
		})
	}
}
