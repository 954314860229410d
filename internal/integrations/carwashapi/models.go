package carwashapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// apiTime принимает как RFC3339, так и время без зоны (так отдаёт бэкенд), трактуя его как локальное
type apiTime time.Time

var apiTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", domain.DateFormat}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			*t = apiTime(parsed)
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t apiTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format("2006-01-02T15:04:05"))
}

// LastSettings настройки последнего бронирования пользователя
type LastSettings struct {
	VehiclePlateNumber string `json:"vehiclePlateNumber"`
	Location           string `json:"location"`
	Services           []int  `json:"services"`
}

// NotAvailable занятые дни и занятые слоты
type NotAvailable struct {
	Dates []apiTime `json:"dates"`
	Times []apiTime `json:"times"`
}

// Capacity свободные места в слоте
type Capacity struct {
	StartTime    apiTime `json:"startTime"`
	FreeCapacity int     `json:"freeCapacity"`
}

// Reservation модель бронирования в API
type Reservation struct {
	ID                 string   `json:"id,omitempty"`
	UserID             string   `json:"userId,omitempty"`
	VehiclePlateNumber string   `json:"vehiclePlateNumber"`
	Location           string   `json:"location,omitempty"`
	State              int      `json:"state"`
	Services           []int    `json:"services"`
	Private            bool     `json:"private"`
	Comment            string   `json:"comment,omitempty"`
	StartDate          apiTime  `json:"startDate"`
	EndDate            *apiTime `json:"endDate,omitempty"`
}

// ErrorResponse модель ошибки API
type ErrorResponse struct {
	Message string `json:"message"`
}

func servicesToDomain(ids []int) []domain.ServiceType {
	services := make([]domain.ServiceType, 0, len(ids))
	for _, id := range ids {
		if st := domain.ServiceType(id); st.Valid() {
			services = append(services, st)
		}
	}
	return services
}

func servicesFromDomain(services []domain.ServiceType) []int {
	ids := make([]int, len(services))
	for i, s := range services {
		ids[i] = int(s)
	}
	return ids
}

func (r *Reservation) toDomain() domain.Reservation {
	res := domain.Reservation{
		ID:                 r.ID,
		UserID:             r.UserID,
		VehiclePlateNumber: r.VehiclePlateNumber,
		Location:           r.Location,
		State:              domain.ReservationState(r.State),
		Services:           servicesToDomain(r.Services),
		Private:            r.Private,
		Comment:            r.Comment,
		StartDate:          time.Time(r.StartDate),
	}
	if r.EndDate != nil {
		end := time.Time(*r.EndDate)
		res.EndDate = &end
	}
	return res
}

func reservationFromDomain(r *domain.Reservation) Reservation {
	res := Reservation{
		ID:                 r.ID,
		VehiclePlateNumber: r.VehiclePlateNumber,
		Location:           r.Location,
		State:              int(r.State),
		Services:           servicesFromDomain(r.Services),
		Private:            r.Private,
		Comment:            r.Comment,
		StartDate:          apiTime(r.StartDate),
	}
	if r.EndDate != nil {
		end := apiTime(*r.EndDate)
		res.EndDate = &end
	}
	return res
}

// errorMessage достаёт сообщение об ошибке из тела ответа: {"message": ...}, JSON-строка или текст
func errorMessage(body []byte) string {
	var obj ErrorResponse
	if err := json.Unmarshal(body, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	var s string
	if err := json.Unmarshal(body, &s); err == nil && s != "" {
		return s
	}
	return strings.TrimSpace(string(body))
}
