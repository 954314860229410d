package models

// SlotResponse слот в часах локального времени
type SlotResponse struct {
	StartTime int `json:"startTime"`
	EndTime   int `json:"endTime"`
}

// ServiceTypeResponse тип услуги
type ServiceTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReservationSettingsResponse ограничения бронирования
type ReservationSettingsResponse struct {
	MaxDaysAhead       int `json:"maxDaysAhead"`
	PlateNumberLength  int `json:"plateNumberLength"`
	MaxRecommendations int `json:"maxRecommendations"`
}

// ConfigurationResponse публичная конфигурация автомойки
type ConfigurationResponse struct {
	Slots               []SlotResponse              `json:"slots"`
	Services            []ServiceTypeResponse       `json:"services"`
	ReservationSettings ReservationSettingsResponse `json:"reservationSettings"`
	Companies           []string                    `json:"companies"`
}
