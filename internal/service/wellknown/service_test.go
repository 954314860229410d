package wellknown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/wellknown/models"
)

func TestGet(t *testing.T) {
	cfg := NewService([]string{"Contoso", "Fabrikam"}).Get(context.Background())

	assert.Equal(t, []models.SlotResponse{
		{StartTime: 8, EndTime: 11},
		{StartTime: 11, EndTime: 14},
		{StartTime: 14, EndTime: 17},
	}, cfg.Slots)
	require.Len(t, cfg.Services, len(domain.ServiceTypes()))
	assert.Equal(t, models.ServiceTypeResponse{ID: 0, Name: "Exterior"}, cfg.Services[0])
	assert.Equal(t, 365, cfg.ReservationSettings.MaxDaysAhead)
	assert.Equal(t, 6, cfg.ReservationSettings.PlateNumberLength)
	assert.Equal(t, []string{"Contoso", "Fabrikam"}, cfg.Companies)
}

func TestGetWithoutCompanies(t *testing.T) {
	cfg := NewService(nil).Get(context.Background())
	assert.NotNil(t, cfg.Companies)
	assert.Empty(t, cfg.Companies)
}
