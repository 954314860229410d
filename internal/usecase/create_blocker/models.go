package create_blocker

import (
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// Request модель запроса на создание блокировки
type Request struct {
	User      *domain.AdminUser // Автор блокировки
	StartDate time.Time         // Начало блокировки
	EndDate   *time.Time        // Конец блокировки (по умолчанию конец дня начала)
	Comment   string            // Причина (опционально)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID                  string
	StartDate           time.Time
	EndDate             time.Time
	Comment             string
	CreatedBy           string
	CreatedAt           time.Time
	DeletedReservations int // Сколько бронирований удалено
}
