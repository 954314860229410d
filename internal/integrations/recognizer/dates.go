package recognizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

var partOfDayWords = map[string]string{
	"morning":   domain.PartOfDayMorning,
	"afternoon": domain.PartOfDayAfternoon,
	"evening":   domain.PartOfDayEvening,
}

var localDateLayouts = []string{
	domain.DateTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15",
	domain.DateFormat,
}

// DateResolver превращает ответ на вопрос о дате во временное выражение.
// Простые ответы разбираются локально, остальное уходит в сервис распознавания.
type DateResolver struct {
	classifier Classifier
}

func NewDateResolver(classifier Classifier) *DateResolver {
	return &DateResolver{classifier: classifier}
}

// Resolve возвращает nil без ошибки, если дату понять не удалось
func (r *DateResolver) Resolve(ctx context.Context, text string, now time.Time) (*domain.Timex, error) {
	if tx, ok := resolveLocally(text, now); ok {
		return tx, nil
	}

	rec, err := r.classifier.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("resolve date %q: %w", text, err)
	}
	for _, e := range rec.Entities {
		if e.Kind == domain.EntityDateTime && e.Timex != nil {
			return e.Timex, nil
		}
	}
	return nil, nil
}

func resolveLocally(text string, now time.Time) (*domain.Timex, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil, false
	}

	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			tx := domain.TimexFromTime(t)
			if layout == domain.DateFormat {
				tx.Hour = nil
			}
			return tx, true
		}
	}

	if tx, err := domain.ParseTimex(strings.ToUpper(s)); err == nil && tx.HasDate() {
		return tx, true
	}

	// "tomorrow", "tomorrow morning", "monday afternoon"
	fields := strings.Fields(s)
	var partOfDay string
	if len(fields) == 2 {
		pod, ok := partOfDayWords[fields[1]]
		if !ok {
			return nil, false
		}
		partOfDay = pod
	} else if len(fields) != 1 {
		return nil, false
	}

	day, ok := relativeDay(fields[0], now)
	if !ok {
		return nil, false
	}
	tx := domain.TimexFromTime(day)
	tx.Hour = nil
	tx.PartOfDay = partOfDay
	return tx, true
}

func relativeDay(word string, now time.Time) (time.Time, bool) {
	today := domain.DateOnly(now)
	switch word {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == word {
			day := today.AddDate(0, 0, 1)
			for day.Weekday() != wd {
				day = day.AddDate(0, 0, 1)
			}
			return day, true
		}
	}
	return time.Time{}, false
}
