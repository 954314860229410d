package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

const dateTimeTypePrefix = "builtin.datetimev2"

var entityKinds = map[string]domain.EntityKind{
	"service":            domain.EntityService,
	"comment":            domain.EntityComment,
	"building":           domain.EntityBuilding,
	"floor":              domain.EntityFloor,
	"seat":               domain.EntitySeat,
	"private":            domain.EntityPrivate,
	"vehicleplatenumber": domain.EntityVehiclePlateNumber,
	"weatherlocation":    domain.EntityWeatherLocation,
}

// Client клиент внешнего сервиса распознавания намерений
type Client struct {
	endpoint   string
	key        string
	minScore   float64
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента.
// Намерения с уверенностью ниже minScore считаются None.
func NewClient(endpoint, key string, minScore float64, timeout time.Duration, log Logger) *Client {
	return &Client{
		endpoint: endpoint,
		key:      key,
		minScore: minScore,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Classify распознаёт намерение и сущности
func (c *Client) Classify(ctx context.Context, text string) (*domain.Recognition, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %v", ErrInternal, err)
	}
	q := u.Query()
	q.Set("q", text)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.toRecognition(&parsed), nil
}

func (c *Client) toRecognition(resp *Response) *domain.Recognition {
	rec := &domain.Recognition{
		Intent: resp.TopScoringIntent.Intent,
		Score:  resp.TopScoringIntent.Score,
	}
	if rec.Intent == "" || rec.Score < c.minScore {
		rec.Intent = domain.IntentNone
	}

	for _, e := range resp.Entities {
		entity, ok := c.toEntity(e)
		if !ok {
			continue
		}
		rec.Entities = append(rec.Entities, entity)
	}
	return rec
}

func (c *Client) toEntity(e Entity) (domain.Entity, bool) {
	typ := strings.ToLower(e.Type)

	if strings.HasPrefix(typ, dateTimeTypePrefix) {
		tx, ok := firstTimex(e.Resolution)
		if !ok {
			c.log.Warn("Recognizer: unresolvable date entity %q", e.Entity)
			return domain.Entity{}, false
		}
		return domain.Entity{Kind: domain.EntityDateTime, Text: e.Entity, Timex: tx}, true
	}

	normalized := strings.NewReplacer(".", "", "_", "", ":", "", " ", "").Replace(typ)
	kind, ok := entityKinds[normalized]
	if !ok {
		return domain.Entity{}, false
	}

	entity := domain.Entity{Kind: kind, Text: e.Entity}
	if kind == domain.EntityService {
		st, ok := parseService(e)
		if !ok {
			c.log.Warn("Recognizer: unknown service %q", e.Entity)
			return domain.Entity{}, false
		}
		entity.Service = st
	}
	return entity, true
}

// parseService пробует нормализованные значения списка, затем исходный текст
func parseService(e Entity) (domain.ServiceType, bool) {
	if e.Resolution != nil {
		for _, raw := range e.Resolution.Values {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				if st, ok := domain.ParseServiceType(s); ok {
					return st, true
				}
			}
		}
	}
	return domain.ParseServiceType(e.Entity)
}

func firstTimex(res *Resolution) (*domain.Timex, bool) {
	if res == nil {
		return nil, false
	}
	for _, raw := range res.Values {
		var v DateTimeValue
		if json.Unmarshal(raw, &v) != nil || v.Timex == "" {
			continue
		}
		tx, err := domain.ParseTimex(v.Timex)
		if err == nil {
			return tx, true
		}
	}
	return nil, false
}
