package blockers

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// BlockerRepository интерфейс репозитория блокировок
type BlockerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Blocker, error)
	List(ctx context.Context) ([]*domain.Blocker, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
