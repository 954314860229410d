package domain

import "time"

// Slot is a fixed daily service window
type Slot struct {
	StartHour int `json:"startTime"`
	EndHour   int `json:"endTime"`
}

// Slots is the ordered slot table: morning, afternoon, evening
var Slots = []Slot{
	{StartHour: 8, EndHour: 11},
	{StartHour: 11, EndHour: 14},
	{StartHour: 14, EndHour: 17},
}

// SlotByStartHour finds the slot starting at the given hour
func SlotByStartHour(hour int) (Slot, bool) {
	for _, s := range Slots {
		if s.StartHour == hour {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotCapacity is the remaining capacity of one slot on one day
type SlotCapacity struct {
	StartTime    time.Time
	FreeCapacity int
}

// NotAvailable lists fully booked dates and booked slot start times
type NotAvailable struct {
	Dates []time.Time
	Times []time.Time
}

// HasDate reports whether the given day is fully booked
func (n NotAvailable) HasDate(day time.Time) bool {
	for _, d := range n.Dates {
		if SameDay(d, day) {
			return true
		}
	}
	return false
}

// HasTime reports whether a slot starting at hour on day is booked
func (n NotAvailable) HasTime(day time.Time, hour int) bool {
	for _, t := range n.Times {
		if SameDay(t, day) && t.Hour() == hour {
			return true
		}
	}
	return false
}

// SameDay compares calendar dates ignoring the time of day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
