package reservations

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// BookingAPI интерфейс клиента API автомойки
type BookingAPI interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetActiveReservations(ctx context.Context) ([]domain.Reservation, error)
	GetNotAvailable(ctx context.Context) (*domain.NotAvailable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
