package slotcalendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// RecommendSlots подбирает до трёх рекомендуемых слотов:
// 1. Ближайший свободный слот сегодня (если сегодня рабочий день и он не занят целиком)
// 2. Ближайший свободный слот в следующий рабочий день
// 3. Ближайший свободный слот начиная с понедельника следующей недели
//
// Кандидат, для которого не нашлось свободного слота, пропускается.
// Ошибки по пропущенным кандидатам возвращаются вторым значением, только для логирования.
func RecommendSlots(notAvailable domain.NotAvailable, now time.Time) ([]time.Time, []error) {
	today := domain.DateOnly(now)

	slots := make([]time.Time, 0, domain.MaxRecommendedSlots)
	var dropped []error

	add := func(day time.Time, err error) {
		if err != nil {
			dropped = append(dropped, err)
			return
		}
		slot, err := FindOpenSlot(day, notAvailable)
		if err != nil {
			dropped = append(dropped, err)
			return
		}
		// Следующий рабочий день может совпасть с понедельником следующей недели
		for _, s := range slots {
			if s.Equal(slot) {
				return
			}
		}
		slots = append(slots, slot)
	}

	// Шаг 1: сегодня
	if !notAvailable.HasDate(today) && !domain.IsWeekend(today) {
		add(today, nil)
	}

	// Шаг 2: ближайший рабочий день после сегодняшнего
	add(nextBusinessDay(today.AddDate(0, 0, 1), notAvailable))

	// Шаг 3: следующая неделя
	add(nextBusinessDay(nextWeekday(today, time.Monday), notAvailable))

	return slots, dropped
}

// FindOpenSlot возвращает первый слот дня, который ещё не занят
func FindOpenSlot(day time.Time, notAvailable domain.NotAvailable) (time.Time, error) {
	y, m, d := day.Date()
	for _, slot := range domain.Slots {
		if !notAvailable.HasTime(day, slot.StartHour) {
			return time.Date(y, m, d, slot.StartHour, 0, 0, 0, day.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %s should have been listed as not available",
		domain.ErrNoOpenSlot, day.Format(domain.DateFormat))
}

// OpenSlotsOnDate оставляет слоты указанного дня со свободными местами, по возрастанию времени
func OpenSlotsOnDate(date time.Time, capacity []domain.SlotCapacity) []domain.SlotCapacity {
	open := make([]domain.SlotCapacity, 0, len(capacity))
	for _, c := range capacity {
		if c.FreeCapacity > 0 && domain.SameDay(c.StartTime, date) {
			open = append(open, c)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].StartTime.Before(open[j].StartTime)
	})
	return open
}

// SlotForPartOfDay maps MO/AF/EV onto the slot table
func SlotForPartOfDay(partOfDay string) (domain.Slot, bool) {
	switch partOfDay {
	case domain.PartOfDayMorning:
		return domain.Slots[0], true
	case domain.PartOfDayAfternoon:
		return domain.Slots[1], true
	case domain.PartOfDayEvening:
		return domain.Slots[2], true
	}
	return domain.Slot{}, false
}

// nextBusinessDay ищет первый рабочий день начиная с from, не помеченный как занятый.
// Поиск ограничен горизонтом бронирования.
func nextBusinessDay(from time.Time, notAvailable domain.NotAvailable) (time.Time, error) {
	day := from
	for i := 0; i <= domain.MaxReservationDaysAhead; i++ {
		if !notAvailable.HasDate(day) && !domain.IsWeekend(day) {
			return day, nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("%w: no business day available after %s",
		domain.ErrNoOpenSlot, from.Format(domain.DateFormat))
}

// nextWeekday returns the first given weekday strictly after today
func nextWeekday(today time.Time, weekday time.Weekday) time.Time {
	day := today.AddDate(0, 0, 1)
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
