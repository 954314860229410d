package handle_turn

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/dialog"
)

// DialogEngine интерфейс движка диалога бронирования
type DialogEngine interface {
	Active(ctx context.Context, key domain.ConversationKey) (bool, error)
	Begin(ctx context.Context, key domain.ConversationKey, entities []domain.Entity, out dialog.Responder) (dialog.Outcome, error)
	Resume(ctx context.Context, key domain.ConversationKey, in domain.Input, out dialog.Responder) (dialog.Outcome, error)
	Reprompt(ctx context.Context, key domain.ConversationKey, out dialog.Responder) (bool, error)
	Cancel(ctx context.Context, key domain.ConversationKey) (bool, error)
	Abort(ctx context.Context, key domain.ConversationKey, cause error, out dialog.Responder) (dialog.Outcome, error)
}

// Classifier интерфейс распознавания намерений
type Classifier interface {
	Classify(ctx context.Context, text string) (*domain.Recognition, error)
}

// KnowledgeBase интерфейс базы ответов на частые вопросы
type KnowledgeBase interface {
	Answer(ctx context.Context, text string) (string, bool)
}

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	Active(ctx context.Context) ([]domain.Reservation, error)
	NextFreeSlot(ctx context.Context, now time.Time) (time.Time, error)
}

// ProfileStore интерфейс хранилища профилей пользователей
type ProfileStore interface {
	Get(ctx context.Context, key domain.ConversationKey, def func() domain.UserProfile) (domain.UserProfile, error)
	Save(ctx context.Context, key domain.ConversationKey, profile domain.UserProfile) error
}

// Locker сериализует ходы одной беседы
type Locker interface {
	Lock(key string) (unlock func())
}

// Metrics интерфейс метрик маршрутизатора
type Metrics interface {
	IncUnderstandingFailed(intent string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
