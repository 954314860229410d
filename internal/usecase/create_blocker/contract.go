package create_blocker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/mailer"
)

// BlockerRepository интерфейс репозитория блокировок
type BlockerRepository interface {
	Create(ctx context.Context, blocker *domain.Blocker) (*domain.Blocker, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Blocker, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteWithin(ctx context.Context, start, end time.Time) ([]domain.ReservationOwner, error)
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, email mailer.Email) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик
type Metrics interface {
	IncBlockersCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
