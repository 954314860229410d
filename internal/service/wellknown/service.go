package wellknown

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/wellknown/models"
)

// Service собирает публичную конфигурацию автомойки
type Service struct {
	companies []string
}

// NewService создает сервис. companies берутся из конфигурации.
func NewService(companies []string) *Service {
	return &Service{companies: companies}
}

// Get возвращает таблицу слотов, типы услуг, ограничения бронирования и список компаний
func (s *Service) Get(_ context.Context) *models.ConfigurationResponse {
	slots := make([]models.SlotResponse, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		slots = append(slots, models.SlotResponse{StartTime: slot.StartHour, EndTime: slot.EndHour})
	}

	serviceTypes := domain.ServiceTypes()
	services := make([]models.ServiceTypeResponse, 0, len(serviceTypes))
	for _, st := range serviceTypes {
		services = append(services, models.ServiceTypeResponse{ID: int(st), Name: st.String()})
	}

	companies := s.companies
	if companies == nil {
		companies = []string{}
	}

	return &models.ConfigurationResponse{
		Slots:    slots,
		Services: services,
		ReservationSettings: models.ReservationSettingsResponse{
			MaxDaysAhead:       domain.MaxReservationDaysAhead,
			PlateNumberLength:  domain.VehiclePlateNumberLength,
			MaxRecommendations: domain.MaxRecommendedSlots,
		},
		Companies: companies,
	}
}
