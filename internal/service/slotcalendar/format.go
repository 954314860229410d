package slotcalendar

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// Natural renders t relative to now: "today 8AM", "tomorrow 11AM", "Monday 2PM",
// or "Monday, October 26 8AM" beyond the coming week.
func Natural(t, now time.Time) string {
	today := domain.DateOnly(now)
	days := int(math.Round(domain.DateOnly(t).Sub(today).Hours() / 24))
	hour := t.Format("3PM")

	switch {
	case days == 0:
		return "today " + hour
	case days == 1:
		return "tomorrow " + hour
	case days > 1 && days < 7:
		return t.Weekday().String() + " " + hour
	}
	return t.Format("Monday, January 2") + " " + hour
}

// SlotLabel renders a choice label like "tomorrow 8AM (8-11)"
func SlotLabel(t, now time.Time) string {
	slot, ok := domain.SlotByStartHour(t.Hour())
	if !ok {
		return Natural(t, now)
	}
	return fmt.Sprintf("%s (%d-%d)", Natural(t, now), slot.StartHour, slot.EndHour)
}

// SlotLabels renders labels for a list of slot start times
func SlotLabels(slots []time.Time, now time.Time) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = SlotLabel(s, now)
	}
	return labels
}
