package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		hasDate   bool
		full      bool
		partOfDay string
		wantErr   bool
	}{
		{name: "date only", input: "2026-10-16", hasDate: true},
		{name: "date and hour", input: "2026-10-16T14", hasDate: true, full: true},
		{name: "date and minutes", input: "2026-10-16T14:30", hasDate: true, full: true},
		{name: "missing year", input: "XXXX-10-16"},
		{name: "part of day", input: "2026-10-16TMO", hasDate: true, partOfDay: PartOfDayMorning},
		{name: "time only", input: "T08"},
		{name: "week based", input: "XXXX-WXX-1"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "bad hour", input: "2026-10-16T25", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := ParseTimex(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hasDate, tx.HasDate())
			assert.Equal(t, tt.full, tx.FullySpecified())
			assert.Equal(t, tt.partOfDay, tx.PartOfDay)
		})
	}
}

func TestTimexTime(t *testing.T) {
	tx, err := ParseTimex("2026-10-16T14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC), tx.Time(time.UTC))

	tx, err = ParseTimex("2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), tx.Time(time.UTC))
}

func TestTimexString(t *testing.T) {
	for _, s := range []string{"2026-10-16", "2026-10-16T14", "XXXX-10-16TAF", "2026-01-02T08:30"} {
		tx, err := ParseTimex(s)
		require.NoError(t, err)
		assert.Equal(t, s, tx.String())
	}
}

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		input string
		want  ServiceType
		ok    bool
	}{
		{"exterior", ServiceExterior, true},
		{"Interior", ServiceInterior, true},
		{"spot cleaning", ServiceSpotCleaning, true},
		{" 2 ", ServiceCarpet, true},
		{"13", ServicePreparingCarForSale, true},
		{"14", 0, false},
		{"-1", 0, false},
		{"wax", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseServiceType(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}

func TestNotAvailable(t *testing.T) {
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	na := NotAvailable{
		Dates: []time.Time{day},
		Times: []time.Time{time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)},
	}

	assert.True(t, na.HasDate(day.Add(10*time.Hour)))
	assert.False(t, na.HasDate(day.AddDate(0, 0, 1)))
	assert.True(t, na.HasTime(day.AddDate(0, 0, 1), 8))
	assert.False(t, na.HasTime(day.AddDate(0, 0, 1), 11))
}
