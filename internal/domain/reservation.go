package domain

import "time"

// ReservationState represents the lifecycle state of a reservation
type ReservationState int

const (
	StateSubmittedNotActual ReservationState = iota
	StateReminderSentWaitingForKey
	StateCarKeyLeftAndLocationConfirmed
	StateWashInProgress
	StateNotYetPaid
	StateDone
)

// Reservation represents a car wash reservation
type Reservation struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"userId,omitempty"`
	VehiclePlateNumber string           `json:"vehiclePlateNumber"`
	Location           string           `json:"location,omitempty"`
	State              ReservationState `json:"state"`
	Services           []ServiceType    `json:"services"`
	Private            bool             `json:"private"`
	Comment            string           `json:"comment,omitempty"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
}

// IsActive returns true until the wash is done
func (r *Reservation) IsActive() bool {
	return r.State != StateDone
}

// ReservationOwner pairs a reservation with the contact details of its owner
type ReservationOwner struct {
	Reservation Reservation
	Email       string
	FirstName   string
}

// LastSettings is the user's previous reservation, used as defaults
type LastSettings struct {
	VehiclePlateNumber string        `json:"vehiclePlateNumber,omitempty"`
	Location           string        `json:"location,omitempty"`
	Services           []ServiceType `json:"services,omitempty"`
}

// Blocker is a time range in which no car wash can be reserved
type Blocker struct {
	ID        string
	StartDate time.Time
	EndDate   *time.Time
	Comment   string
	CreatedBy string
	CreatedAt time.Time
}

// EndOfStartDay is 23:59:59 on the blocker's start day
func (b *Blocker) EndOfStartDay() time.Time {
	y, m, d := b.StartDate.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, b.StartDate.Location())
}
