package carwashapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

type tokenKey struct{}

// WithToken кладёт токен пользователя в контекст запроса
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext возвращает токен пользователя или пустую строку
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client клиент API автомойки. Все запросы выполняются от имени пользователя из контекста.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLastSettings получает настройки последнего бронирования пользователя
func (c *Client) GetLastSettings(ctx context.Context) (*domain.LastSettings, error) {
	var settings LastSettings
	if err := c.do(ctx, http.MethodGet, "/api/reservations/lastsettings", nil, &settings); err != nil {
		return nil, err
	}
	return &domain.LastSettings{
		VehiclePlateNumber: settings.VehiclePlateNumber,
		Location:           settings.Location,
		Services:           servicesToDomain(settings.Services),
	}, nil
}

// GetNotAvailable получает полностью занятые дни и занятые слоты
func (c *Client) GetNotAvailable(ctx context.Context) (*domain.NotAvailable, error) {
	var na NotAvailable
	if err := c.do(ctx, http.MethodGet, "/api/reservations/notavailabledates", nil, &na); err != nil {
		return nil, err
	}

	result := &domain.NotAvailable{
		Dates: make([]time.Time, len(na.Dates)),
		Times: make([]time.Time, len(na.Times)),
	}
	for i, d := range na.Dates {
		result.Dates[i] = time.Time(d)
	}
	for i, t := range na.Times {
		result.Times[i] = time.Time(t)
	}
	return result, nil
}

// GetCapacity получает свободные места по слотам на указанную дату
func (c *Client) GetCapacity(ctx context.Context, date time.Time) ([]domain.SlotCapacity, error) {
	path := "/api/reservations/reservationcapacity?date=" + url.QueryEscape(date.Format(domain.DateFormat))

	var capacity []Capacity
	if err := c.do(ctx, http.MethodGet, path, nil, &capacity); err != nil {
		return nil, err
	}

	result := make([]domain.SlotCapacity, len(capacity))
	for i, cp := range capacity {
		result[i] = domain.SlotCapacity{StartTime: time.Time(cp.StartTime), FreeCapacity: cp.FreeCapacity}
	}
	return result, nil
}

// CreateReservation создаёт бронирование
func (c *Client) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	body := reservationFromDomain(reservation)

	var created Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservations", body, &created); err != nil {
		return nil, err
	}
	res := created.toDomain()
	return &res, nil
}

// GetActiveReservations получает незавершённые бронирования пользователя
func (c *Client) GetActiveReservations(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations", nil, &reservations); err != nil {
		return nil, err
	}

	active := make([]domain.Reservation, 0, len(reservations))
	for i := range reservations {
		res := reservations[i].toDomain()
		if res.IsActive() {
			active = append(active, res)
		}
	}
	return active, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	token := TokenFromContext(ctx)
	if token == "" {
		return fmt.Errorf("%w: no user token for %s %s", domain.ErrAuthExpired, method, path)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		c.log.Warn("CarWashAPI: %s %s - token rejected with status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: status %d", domain.ErrAuthExpired, resp.StatusCode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	default:
		raw, _ := io.ReadAll(resp.Body)
		msg := errorMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("The car wash service answered with status %d.", resp.StatusCode)
		}
		c.log.Error("CarWashAPI: %s %s - unexpected status %d: %s", method, path, resp.StatusCode, msg)
		return &domain.APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
