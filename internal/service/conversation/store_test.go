package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	stateRepo "github.com/m04kA/SMC-CarWashBot/internal/infra/storage/state"
)

var key = domain.ConversationKey{ChannelID: "msteams", ConversationID: "c1", UserID: "u1"}

func TestDialogStoreRoundTrip(t *testing.T) {
	store := NewDialogStore(stateRepo.NewMemoryRepository())
	ctx := context.Background()

	inst, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, inst)

	start := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	private := true
	want := &domain.DialogInstance{
		Dialog:  domain.DialogNewReservation,
		Step:    "plate",
		Pending: domain.PromptPlateNumber,
		Draft: domain.ReservationDraft{
			Services:  []domain.ServiceType{domain.ServiceExterior},
			StartDate: &start,
			Timex:     domain.TimexFromTime(start),
			IsPrivate: &private,
		},
		StartedAt: start,
	}
	require.NoError(t, store.Set(ctx, key, want))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, want.Step, got.Step)
	assert.Equal(t, want.Pending, got.Pending)
	assert.True(t, start.Equal(*got.Draft.StartDate))
	assert.Equal(t, want.Draft.Services, got.Draft.Services)
	assert.True(t, *got.Draft.IsPrivate)

	require.NoError(t, store.Clear(ctx, key))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDialogStoreCorruptedState(t *testing.T) {
	repo := stateRepo.NewMemoryRepository()
	require.NoError(t, repo.Set(context.Background(), dialogKeyPrefix+key.String(), []byte("{not json")))

	_, err := NewDialogStore(repo).Get(context.Background(), key)
	assert.ErrorIs(t, err, ErrCorruptedState)
}

func TestProfileStoreDefault(t *testing.T) {
	store := NewProfileStore(stateRepo.NewMemoryRepository())
	ctx := context.Background()

	profile, err := store.Get(ctx, key, func() domain.UserProfile { return domain.UserProfile{} })
	require.NoError(t, err)
	assert.False(t, profile.WelcomeMessageSent)

	require.NoError(t, store.Save(ctx, key, domain.UserProfile{WelcomeMessageSent: true}))

	other := key
	other.ConversationID = "c2"
	profile, err = store.Get(ctx, other, func() domain.UserProfile { return domain.UserProfile{} })
	require.NoError(t, err)
	assert.True(t, profile.WelcomeMessageSent, "profile is shared across conversations")
}
