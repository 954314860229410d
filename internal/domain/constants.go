package domain

// Business validation constants
const (
	// MaxReservationDaysAhead is how far into the future a reservation may be made
	MaxReservationDaysAhead = 365

	// VehiclePlateNumberLength is the length of a normalized plate number
	VehiclePlateNumberLength = 6

	// MaxRecommendedSlots caps the recommendation list shown to the user
	MaxRecommendedSlots = 3
)

// Format constants
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04"
)

// Dialog names
const (
	DialogNewReservation = "newReservation"
)

// AppURL is the web app users are sent to for changes the bot can't make
const AppURL = "https://carwashu.azurewebsites.net/"
