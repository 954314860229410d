package handle_message

import (
	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	handleTurn "github.com/m04kA/SMC-CarWashBot/internal/usecase/handle_turn"
)

// ChannelAccount отправитель события
type ChannelAccount struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// MessageRequest HTTP request model входящего события канала
type MessageRequest struct {
	Type           string         `json:"type" validate:"required,oneof=message conversationUpdate"`
	Text           string         `json:"text"`
	Value          map[string]any `json:"value,omitempty"`
	ChannelID      string         `json:"channelId" validate:"required"`
	ConversationID string         `json:"conversationId" validate:"required"`
	From           ChannelAccount `json:"from"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Activities []domain.Activity `json:"activities"`
	Outcome    string            `json:"outcome"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MessageRequest) ToUseCaseRequest(token string) *handleTurn.Request {
	return &handleTurn.Request{
		Event: domain.TurnEvent{
			Type:           domain.EventType(r.Type),
			Text:           r.Text,
			Value:          r.Value,
			ChannelID:      r.ChannelID,
			ConversationID: r.ConversationID,
			UserID:         r.From.ID,
			UserName:       r.From.Name,
		},
		Token: token,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *handleTurn.Response) *MessageResponse {
	activities := resp.Activities
	if activities == nil {
		activities = []domain.Activity{}
	}
	return &MessageResponse{
		Activities: activities,
		Outcome:    resp.Outcome,
	}
}
