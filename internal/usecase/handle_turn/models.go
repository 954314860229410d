package handle_turn

import "github.com/m04kA/SMC-CarWashBot/internal/domain"

// Request модель входящего хода
type Request struct {
	Event domain.TurnEvent // Событие канала
	Token string           // Токен пользователя для API автомойки (опционально)
}

// Response модель ответа бота на ход
type Response struct {
	Activities []domain.Activity // Исходящие сообщения в порядке отправки
	Outcome    string            // Итог хода диалога бронирования
}
