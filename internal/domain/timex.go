package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Part of day codes used in time expressions
const (
	PartOfDayMorning   = "MO"
	PartOfDayAfternoon = "AF"
	PartOfDayEvening   = "EV"
	PartOfDayNight     = "NI"
)

// Timex is a partially specified date/time expression.
// Every field is independently optional.
type Timex struct {
	Year      *int   `json:"year,omitempty"`
	Month     *int   `json:"month,omitempty"`
	Day       *int   `json:"day,omitempty"`
	Hour      *int   `json:"hour,omitempty"`
	Minute    *int   `json:"minute,omitempty"`
	PartOfDay string `json:"partOfDay,omitempty"`
}

// HasDate reports whether year, month and day are all known
func (t *Timex) HasDate() bool {
	return t != nil && t.Year != nil && t.Month != nil && t.Day != nil
}

// FullySpecified reports whether the expression pins a concrete date and hour
func (t *Timex) FullySpecified() bool {
	return t.HasDate() && t.Hour != nil
}

// Time returns the described moment; a missing hour means midnight.
// Only meaningful when HasDate is true.
func (t *Timex) Time(loc *time.Location) time.Time {
	hour := 0
	if t.Hour != nil {
		hour = *t.Hour
	}
	return time.Date(*t.Year, time.Month(*t.Month), *t.Day, hour, 0, 0, 0, loc)
}

// String renders the expression back into TIMEX form
func (t *Timex) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	if t.Year != nil || t.Month != nil || t.Day != nil {
		b.WriteString(timexField(t.Year, 4))
		b.WriteByte('-')
		b.WriteString(timexField(t.Month, 2))
		b.WriteByte('-')
		b.WriteString(timexField(t.Day, 2))
	}
	switch {
	case t.Hour != nil:
		b.WriteByte('T')
		b.WriteString(fmt.Sprintf("%02d", *t.Hour))
		if t.Minute != nil {
			b.WriteString(fmt.Sprintf(":%02d", *t.Minute))
		}
	case t.PartOfDay != "":
		b.WriteByte('T')
		b.WriteString(t.PartOfDay)
	}
	return b.String()
}

func timexField(v *int, width int) string {
	if v == nil {
		return strings.Repeat("X", width)
	}
	return fmt.Sprintf("%0*d", width, *v)
}

// ParseTimex parses TIMEX3 expressions such as "2026-10-16", "XXXX-10-16T14",
// "2026-10-16TMO" or "T14:30". Week-based dates ("XXXX-WXX-1") parse with no date fields set.
func ParseTimex(raw string) (*Timex, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidTimex)
	}

	datePart, timePart := s, ""
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}

	tx := &Timex{}

	if datePart != "" {
		parts := strings.Split(datePart, "-")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimex, raw)
		}
		if !strings.HasPrefix(parts[1], "W") {
			var err error
			if tx.Year, err = parseTimexField(parts[0]); err != nil {
				return nil, fmt.Errorf("%w: year in %q", ErrInvalidTimex, raw)
			}
			if tx.Month, err = parseTimexField(parts[1]); err != nil {
				return nil, fmt.Errorf("%w: month in %q", ErrInvalidTimex, raw)
			}
			if tx.Day, err = parseTimexField(parts[2]); err != nil {
				return nil, fmt.Errorf("%w: day in %q", ErrInvalidTimex, raw)
			}
		}
	}

	if timePart != "" {
		switch timePart {
		case PartOfDayMorning, PartOfDayAfternoon, PartOfDayEvening, PartOfDayNight:
			tx.PartOfDay = timePart
		default:
			fields := strings.Split(timePart, ":")
			hour, err := strconv.Atoi(fields[0])
			if err != nil || hour < 0 || hour > 23 {
				return nil, fmt.Errorf("%w: hour in %q", ErrInvalidTimex, raw)
			}
			tx.Hour = &hour
			if len(fields) > 1 {
				minute, err := strconv.Atoi(fields[1])
				if err != nil || minute < 0 || minute > 59 {
					return nil, fmt.Errorf("%w: minute in %q", ErrInvalidTimex, raw)
				}
				tx.Minute = &minute
			}
		}
	}

	return tx, nil
}

func parseTimexField(s string) (*int, error) {
	if strings.Trim(s, "X") == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// TimexFromTime builds a fully specified expression from t
func TimexFromTime(t time.Time) *Timex {
	y, m, d := t.Date()
	month, hour := int(m), t.Hour()
	return &Timex{Year: &y, Month: &month, Day: &d, Hour: &hour}
}
