package create_blocker

import (
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	createBlocker "github.com/m04kA/SMC-CarWashBot/internal/usecase/create_blocker"
)

// CreateBlockerRequest HTTP request model
type CreateBlockerRequest struct {
	StartDate *time.Time `json:"startDate" validate:"required"` // RFC 3339
	EndDate   *time.Time `json:"endDate,omitempty"`             // По умолчанию 23:59:59 дня начала
	Comment   string     `json:"comment,omitempty" validate:"max=500"`
}

// BlockerResponse HTTP response model
type BlockerResponse struct {
	ID                  string    `json:"id"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	Comment             string    `json:"comment,omitempty"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
	DeletedReservations int       `json:"deletedReservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockerRequest) ToUseCaseRequest(user *domain.AdminUser) *createBlocker.Request {
	return &createBlocker.Request{
		User:      user,
		StartDate: *r.StartDate,
		EndDate:   r.EndDate,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlocker.Response) *BlockerResponse {
	return &BlockerResponse{
		ID:                  resp.ID,
		StartDate:           resp.StartDate,
		EndDate:             resp.EndDate,
		Comment:             resp.Comment,
		CreatedBy:           resp.CreatedBy,
		CreatedAt:           resp.CreatedAt,
		DeletedReservations: resp.DeletedReservations,
	}
}
