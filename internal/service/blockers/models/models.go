package models

import (
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// BlockerResponse блокировка в ответе API
type BlockerResponse struct {
	ID        string     `json:"id"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FromDomainBlocker конвертирует domain.Blocker в BlockerResponse
func FromDomainBlocker(b *domain.Blocker) *BlockerResponse {
	return &BlockerResponse{
		ID:        b.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Comment:   b.Comment,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockerList конвертирует список блокировок
func FromDomainBlockerList(blockers []*domain.Blocker) []*BlockerResponse {
	result := make([]*BlockerResponse, 0, len(blockers))
	for _, b := range blockers {
		result = append(result, FromDomainBlocker(b))
	}
	return result
}
