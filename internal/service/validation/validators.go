package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// Services принимает выбор из карточки услуг или текст.
// Список может быть разделён запятой или точкой с запятой: часть клиентов подменяет разделитель.
func Services(in domain.Input) ([]domain.ServiceType, error) {
	raw := servicesPayload(in)

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	seen := make(map[domain.ServiceType]bool, len(tokens))
	services := make([]domain.ServiceType, 0, len(tokens))
	for _, token := range tokens {
		st, ok := domain.ParseServiceType(token)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		services = append(services, st)
	}

	if len(services) == 0 {
		return nil, reject(MsgChooseService)
	}
	return services, nil
}

func servicesPayload(in domain.Input) string {
	switch v := in.Value["services"].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	}
	return in.Text
}

// Date проверяет, что выражение указывает на конкретный день не раньше сегодняшнего
// и не дальше MaxReservationDaysAhead дней вперёд
func Date(tx *domain.Timex, now time.Time) (time.Time, error) {
	if !tx.HasDate() {
		return time.Time{}, reject(MsgDateNotUnderstood)
	}

	date := tx.Time(now.Location())
	// time.Date нормализует 31 февраля в март: такой день не существует
	if int(date.Month()) != *tx.Month || date.Day() != *tx.Day {
		return time.Time{}, reject(MsgDateNotUnderstood)
	}

	days := CalendarDaysBetween(now, date)
	if days > domain.MaxReservationDaysAhead {
		return time.Time{}, reject(MsgDateTooFar)
	}
	if days < 0 {
		return time.Time{}, reject(MsgDateInPast)
	}
	return date, nil
}

// CalendarDaysBetween counts calendar days from a to b, ignoring the time of day
func CalendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// NormalizePlateNumber upper-cases and strips hyphens and spaces
func NormalizePlateNumber(raw string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.ToUpper(strings.TrimSpace(raw)))
}

// VehiclePlateNumber accepts plates of exactly VehiclePlateNumberLength characters after normalization
func VehiclePlateNumber(in domain.Input) (string, error) {
	plate := NormalizePlateNumber(in.Text)
	if utf8.RuneCountInString(plate) != domain.VehiclePlateNumberLength {
		return "", reject(MsgInvalidPlateNumber)
	}
	return plate, nil
}

var (
	yesWords = map[string]bool{
		"yes": true, "y": true, "yep": true, "yeah": true, "sure": true,
		"ok": true, "okay": true, "correct": true, "right": true, "1": true,
	}
	noWords = map[string]bool{
		"no": true, "n": true, "nope": true, "nah": true, "wrong": true, "2": true,
	}
)

// Confirmation понимает да/нет (в т.ч. номер варианта из подсказок Yes/No)
func Confirmation(in domain.Input) (bool, error) {
	if v, ok := in.Value["confirmed"].(bool); ok {
		return v, nil
	}

	text := strings.ToLower(strings.TrimSpace(in.Text))
	switch {
	case yesWords[text]:
		return true, nil
	case noWords[text]:
		return false, nil
	}
	return false, reject(MsgAnswerYesOrNo)
}

var commentDeclines = map[string]bool{
	"skip":       true,
	"nope":       true,
	"thanks, no": true,
	"no":         true,
}

// Comment returns the comment text, or declined=true when the user does not want to leave one
func Comment(in domain.Input) (comment string, declined bool) {
	text := strings.TrimSpace(in.Text)
	if text == "" || commentDeclines[strings.ToLower(text)] {
		return "", true
	}
	return text, false
}
