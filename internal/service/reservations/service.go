package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// Service сервис для работы с бронированиями пользователя через API автомойки
type Service struct {
	api    BookingAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(api BookingAPI, logger Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// Submit собирает бронирование из черновика и отправляет его в API.
// Ошибки остаются в таксономии domain: ErrAuthExpired, *APIError или ErrInternalProtocol.
func (s *Service) Submit(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	if len(draft.Services) == 0 || draft.StartDate == nil {
		return nil, fmt.Errorf("%w: draft is not complete", domain.ErrInternalProtocol)
	}

	reservation := &domain.Reservation{
		VehiclePlateNumber: draft.VehiclePlateNumber,
		Services:           draft.Services,
		Private:            draft.IsPrivate != nil && *draft.IsPrivate,
		Comment:            draft.Comment,
		StartDate:          *draft.StartDate,
	}
	if draft.LastSettings != nil {
		reservation.Location = draft.LastSettings.Location
	}

	created, err := s.api.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, s.mapError("Submit", err)
	}

	s.logger.Info("Submit: reservation id=%s created for %s", created.ID, created.StartDate.Format(domain.DateTimeFormat))
	return created, nil
}

// Active возвращает активные бронирования пользователя
func (s *Service) Active(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.api.GetActiveReservations(ctx)
	if err != nil {
		return nil, s.mapError("Active", err)
	}
	return reservations, nil
}

// NextFreeSlot ищет ближайший свободный слот начиная с сегодняшнего дня
func (s *Service) NextFreeSlot(ctx context.Context, now time.Time) (time.Time, error) {
	notAvailable, err := s.api.GetNotAvailable(ctx)
	if err != nil {
		return time.Time{}, s.mapError("NextFreeSlot", err)
	}

	day := domain.DateOnly(now)
	for i := 0; i <= domain.MaxReservationDaysAhead; i++ {
		if domain.IsWeekend(day) || notAvailable.HasDate(day) {
			day = day.AddDate(0, 0, 1)
			continue
		}
		y, m, d := day.Date()
		for _, slot := range domain.Slots {
			start := time.Date(y, m, d, slot.StartHour, 0, 0, 0, day.Location())
			if start.After(now) && !notAvailable.HasTime(day, slot.StartHour) {
				return start, nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, domain.ErrNoOpenSlot
}

func (s *Service) mapError(op string, err error) error {
	if errors.Is(err, domain.ErrAuthExpired) {
		s.logger.Warn("%s: authentication expired", op)
		return err
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		s.logger.Warn("%s: API refused request: status=%d, message=%s", op, apiErr.StatusCode, apiErr.Message)
		return apiErr
	}

	s.logger.Error("%s: API call failed: %v", op, err)
	return &domain.APIError{Message: err.Error()}
}
