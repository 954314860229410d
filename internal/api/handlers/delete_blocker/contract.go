package delete_blocker

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

type BlockerService interface {
	Delete(ctx context.Context, user *domain.AdminUser, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
