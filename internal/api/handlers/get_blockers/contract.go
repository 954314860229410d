package get_blockers

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/blockers/models"
)

type BlockerService interface {
	List(ctx context.Context, user *domain.AdminUser) ([]*models.BlockerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
