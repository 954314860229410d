package domain

import "time"

// PromptKind identifies the value a suspended step expects on resume
type PromptKind string

const (
	PromptNone            PromptKind = ""
	PromptServices        PromptKind = "services"
	PromptRecommendedSlot PromptKind = "recommended_slot"
	PromptDate            PromptKind = "date"
	PromptSlot            PromptKind = "slot"
	PromptConfirmation    PromptKind = "confirmation"
	PromptPlateNumber     PromptKind = "plate_number"
	PromptText            PromptKind = "text"
)

// ChoiceList names the list a numeric choice indexes into
type ChoiceList string

const (
	ChoiceListNone        ChoiceList = ""
	ChoiceListRecommended ChoiceList = "recommended"
	ChoiceListSlots       ChoiceList = "slots"
)

// ReservationDraft is the in-progress reservation owned by one conversation
type ReservationDraft struct {
	Services              []ServiceType `json:"services,omitempty"`
	StartDate             *time.Time    `json:"startDate,omitempty"`
	Timex                 *Timex        `json:"timex,omitempty"`
	VehiclePlateNumber    string        `json:"vehiclePlateNumber,omitempty"`
	VehiclePlateConfirmed bool          `json:"vehiclePlateConfirmed,omitempty"`
	IsPrivate             *bool         `json:"isPrivate,omitempty"`
	Comment               string        `json:"comment,omitempty"`
	LastSettings          *LastSettings `json:"lastSettings,omitempty"`

	// Presented choices. Valid only while the matching prompt is pending.
	RecommendedSlots []time.Time `json:"recommendedSlots,omitempty"`
	SlotChoices      []time.Time `json:"slotChoices,omitempty"`
	ChoiceList       ChoiceList  `json:"choiceList,omitempty"`
	ChoiceLabels     []string    `json:"choiceLabels,omitempty"`
}

// PresentChoices records the list the next choice answer indexes into
func (d *ReservationDraft) PresentChoices(list ChoiceList, slots []time.Time, labels []string) {
	d.ChoiceList = list
	d.ChoiceLabels = labels
	switch list {
	case ChoiceListRecommended:
		d.RecommendedSlots = slots
	case ChoiceListSlots:
		d.SlotChoices = slots
	}
}

// ClearChoices drops presented choices once they are answered
func (d *ReservationDraft) ClearChoices() {
	d.RecommendedSlots = nil
	d.SlotChoices = nil
	d.ChoiceList = ChoiceListNone
	d.ChoiceLabels = nil
}

// DialogInstance is the persisted state of one suspended dialog
type DialogInstance struct {
	Dialog    string           `json:"dialog"`
	Step      string           `json:"step"`
	Pending   PromptKind       `json:"pending"`
	Draft     ReservationDraft `json:"draft"`
	Prompt    []Activity       `json:"prompt,omitempty"`
	StartedAt time.Time        `json:"startedAt"`
}
