package create_blocker

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// validateRequest валидирует входные данные и возвращает итоговый конец блокировки
func validateRequest(req *Request) (time.Time, error) {
	if req.StartDate.IsZero() {
		return time.Time{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	end := (&domain.Blocker{StartDate: req.StartDate}).EndOfStartDay()
	if req.EndDate != nil {
		end = *req.EndDate
	}

	if !end.After(req.StartDate) {
		return time.Time{}, ErrInvalidTimeRange
	}
	return end, nil
}
