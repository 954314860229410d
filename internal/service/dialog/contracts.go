package dialog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// BookingAPI интерфейс клиента API автомойки, используемый шагами диалога
type BookingAPI interface {
	GetLastSettings(ctx context.Context) (*domain.LastSettings, error)
	GetNotAvailable(ctx context.Context) (*domain.NotAvailable, error)
	GetCapacity(ctx context.Context, date time.Time) ([]domain.SlotCapacity, error)
}

// Submitter отправляет готовый черновик в API
type Submitter interface {
	Submit(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error)
}

// DateResolver превращает свободный текст в выражение даты
type DateResolver interface {
	Resolve(ctx context.Context, text string, now time.Time) (*domain.Timex, error)
}

// Store интерфейс хранилища приостановленных диалогов
type Store interface {
	Get(ctx context.Context, key domain.ConversationKey) (*domain.DialogInstance, error)
	Set(ctx context.Context, key domain.ConversationKey, inst *domain.DialogInstance) error
	Clear(ctx context.Context, key domain.ConversationKey) error
}

// Responder принимает исходящие сообщения текущего хода
type Responder interface {
	Send(activities ...domain.Activity)
}

// Metrics интерфейс метрик диалога
type Metrics interface {
	ObserveDialogOutcome(dialog, outcome string)
	IncReservationsCreated()
	AddRecommendationsDropped(n int)
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
