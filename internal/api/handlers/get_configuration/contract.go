package get_configuration

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/service/wellknown/models"
)

type ConfigurationService interface {
	Get(ctx context.Context) *models.ConfigurationResponse
}
