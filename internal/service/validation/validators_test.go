package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

func assertRejected(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidationRejected)
	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, msg, rej.Message)
}

func TestServices(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Input
		want []domain.ServiceType
	}{
		{
			name: "card value with commas",
			in:   domain.Input{Value: map[string]any{"services": "0,1"}},
			want: []domain.ServiceType{domain.ServiceExterior, domain.ServiceInterior},
		},
		{
			name: "card value with semicolons",
			in:   domain.Input{Value: map[string]any{"services": "exterior;carpet"}},
			want: []domain.ServiceType{domain.ServiceExterior, domain.ServiceCarpet},
		},
		{
			name: "card value as list",
			in:   domain.Input{Value: map[string]any{"services": []any{float64(2), "polishing"}}},
			want: []domain.ServiceType{domain.ServiceCarpet, domain.ServicePolishing},
		},
		{
			name: "free text with unknown entries",
			in:   domain.Input{Text: "exterior, wax, exterior"},
			want: []domain.ServiceType{domain.ServiceExterior},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Services(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Services(domain.Input{Text: "wax"})
	assertRejected(t, err, MsgChooseService)

	_, err = Services(domain.Input{})
	assertRejected(t, err, MsgChooseService)
}

func TestRecommendedSlot(t *testing.T) {
	draft := &domain.ReservationDraft{ChoiceLabels: []string{"today 8AM (8-11)", "tomorrow 8AM (8-11)", "Monday 8AM (8-11)"}}

	choice, err := RecommendedSlot(domain.Input{Text: " Skip "}, draft)
	require.NoError(t, err)
	assert.True(t, choice.Skipped)

	choice, err = RecommendedSlot(domain.Input{Text: "2"}, draft)
	require.NoError(t, err)
	assert.Equal(t, Choice{List: domain.ChoiceListRecommended, Index: 1}, choice)

	choice, err = RecommendedSlot(domain.Input{Text: "monday"}, draft)
	require.NoError(t, err)
	assert.Equal(t, 2, choice.Index)

	choice, err = RecommendedSlot(domain.Input{Value: map[string]any{"choice": float64(0)}}, draft)
	require.NoError(t, err)
	assert.Equal(t, 0, choice.Index)

	_, err = RecommendedSlot(domain.Input{Text: "8AM"}, draft)
	assertRejected(t, err, MsgChooseOptionOrSkip)

	_, err = RecommendedSlot(domain.Input{Text: "4"}, draft)
	assertRejected(t, err, MsgChooseOptionOrSkip)
}

func TestSlot(t *testing.T) {
	draft := &domain.ReservationDraft{ChoiceLabels: []string{"tomorrow 8AM (8-11)", "tomorrow 2PM (14-17)"}}

	choice, err := Slot(domain.Input{Text: "tomorrow 2PM (14-17)"}, draft)
	require.NoError(t, err)
	assert.Equal(t, Choice{List: domain.ChoiceListSlots, Index: 1}, choice)

	_, err = Slot(domain.Input{Text: "skip"}, draft)
	assertRejected(t, err, MsgChooseSlot)
}

func TestDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 16, 30, 0, 0, time.UTC)
	timex := func(d time.Time) *domain.Timex {
		return domain.TimexFromTime(d)
	}

	got, err := Date(timex(now.AddDate(0, 0, 365)), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 10, 15, 16, 0, 0, 0, time.UTC), got)

	_, err = Date(timex(now.AddDate(0, 0, 366)), now)
	assertRejected(t, err, MsgDateTooFar)

	got, err = Date(timex(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)), now)
	require.NoError(t, err, "earlier hour today is still today")
	assert.Equal(t, 8, got.Hour())

	_, err = Date(timex(now.AddDate(0, 0, -1)), now)
	assertRejected(t, err, MsgDateInPast)

	tx, err := domain.ParseTimex("XXXX-10-20")
	require.NoError(t, err)
	_, err = Date(tx, now)
	assertRejected(t, err, MsgDateNotUnderstood)

	_, err = Date(nil, now)
	assertRejected(t, err, MsgDateNotUnderstood)

	tx, err = domain.ParseTimex("2027-02-31")
	require.NoError(t, err)
	_, err = Date(tx, now)
	assertRejected(t, err, MsgDateNotUnderstood)
}

func TestVehiclePlateNumber(t *testing.T) {
	for _, raw := range []string{"ABC 123", "abc-123", "ABC123", " a-b c1-23 "} {
		got, err := VehiclePlateNumber(domain.Input{Text: raw})
		require.NoError(t, err, raw)
		assert.Equal(t, "ABC123", got, raw)
	}

	for _, raw := range []string{"AB12C", "ABC1234DE", "", "AB 123 CD"} {
		_, err := VehiclePlateNumber(domain.Input{Text: raw})
		assertRejected(t, err, MsgInvalidPlateNumber)
	}
}

func TestConfirmation(t *testing.T) {
	yes, err := Confirmation(domain.Input{Text: "Yes"})
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = Confirmation(domain.Input{Text: "nope"})
	require.NoError(t, err)
	assert.False(t, yes)

	yes, err = Confirmation(domain.Input{Value: map[string]any{"confirmed": true}})
	require.NoError(t, err)
	assert.True(t, yes)

	_, err = Confirmation(domain.Input{Text: "maybe"})
	assertRejected(t, err, MsgAnswerYesOrNo)
}

func TestComment(t *testing.T) {
	for _, raw := range []string{"skip", "Nope", "thanks, no", "NO", "  "} {
		_, declined := Comment(domain.Input{Text: raw})
		assert.True(t, declined, raw)
	}

	comment, declined := Comment(domain.Input{Text: " Keys are in the glovebox "})
	assert.False(t, declined)
	assert.Equal(t, "Keys are in the glovebox", comment)
}
