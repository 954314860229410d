package domain

// EntityKind tags a recognized entity
type EntityKind string

const (
	EntityService            EntityKind = "Service"
	EntityDateTime           EntityKind = "DateTime"
	EntityComment            EntityKind = "Comment"
	EntityBuilding           EntityKind = "Building"
	EntityFloor              EntityKind = "Floor"
	EntitySeat               EntityKind = "Seat"
	EntityPrivate            EntityKind = "Private"
	EntityVehiclePlateNumber EntityKind = "VehiclePlateNumber"
	EntityWeatherLocation    EntityKind = "WeatherLocation"
)

// Entity is a typed entity recognized in user text.
// Service is set for EntityService, Timex for EntityDateTime.
type Entity struct {
	Kind    EntityKind  `json:"kind"`
	Text    string      `json:"text"`
	Service ServiceType `json:"service,omitempty"`
	Timex   *Timex      `json:"timex,omitempty"`
}

// Intent names produced by the classifier
const (
	IntentNewReservation    = "Reservation_Add"
	IntentCancelReservation = "Reservation_Delete"
	IntentEditReservation   = "Reservation_Edit"
	IntentFindReservation   = "Reservation_Find"
	IntentNextFreeSlot      = "Reservation_NextFreeSlot"
	IntentStop              = "Stop"
	IntentHelp              = "Help"
	IntentNone              = "None"
	IntentWeather           = "Weather_GetForecast"
)

// Recognition is the classifier result for one utterance
type Recognition struct {
	Intent   string
	Score    float64
	Entities []Entity
}

// UserProfile is per-user state kept across conversations
type UserProfile struct {
	WelcomeMessageSent bool `json:"welcomeMessageSent"`
}
