package domain

import (
	"fmt"

	"github.com/rs/xid"
)

// EventType is the kind of inbound turn event
type EventType string

const (
	EventMessage            EventType = "message"
	EventConversationUpdate EventType = "conversationUpdate"
)

// ConversationKey identifies one user's dialog in one conversation on one channel
type ConversationKey struct {
	ChannelID      string
	ConversationID string
	UserID         string
}

func (k ConversationKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ChannelID, k.ConversationID, k.UserID)
}

// UserKey identifies a user on a channel
func (k ConversationKey) UserKey() string {
	return fmt.Sprintf("%s/%s", k.ChannelID, k.UserID)
}

// Input is the raw answer delivered to a suspended step
type Input struct {
	Text  string         `json:"text,omitempty"`
	Value map[string]any `json:"value,omitempty"`
}

// TurnEvent is one inbound event from a channel
type TurnEvent struct {
	Type           EventType
	Text           string
	Value          map[string]any
	ChannelID      string
	ConversationID string
	UserID         string
	UserName       string
}

// Key returns the conversation key of the event
func (e *TurnEvent) Key() ConversationKey {
	return ConversationKey{ChannelID: e.ChannelID, ConversationID: e.ConversationID, UserID: e.UserID}
}

// CardKind is an abstract rich attachment the channel renders
type CardKind string

const (
	CardServiceSelection   CardKind = "serviceSelection"
	CardReservationSummary CardKind = "reservationSummary"
	CardSignIn             CardKind = "signIn"
	CardOpenApp            CardKind = "openApp"
)

// Card is a rendering instruction, not a rendered card
type Card struct {
	Kind        CardKind      `json:"kind"`
	Title       string        `json:"title,omitempty"`
	Text        string        `json:"text,omitempty"`
	URL         string        `json:"url,omitempty"`
	Services    []ServiceType `json:"services,omitempty"`
	Reservation *Reservation  `json:"reservation,omitempty"`
}

// Activity is one outbound message
type Activity struct {
	ID      string   `json:"id"`
	Text    string   `json:"text,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Card    *Card    `json:"card,omitempty"`
}

// Message builds a plain text activity
func Message(text string) Activity {
	return Activity{ID: xid.New().String(), Text: text}
}

// ChoicePrompt builds a prompt with quick replies
func ChoicePrompt(text string, choices []string) Activity {
	return Activity{ID: xid.New().String(), Text: text, Choices: choices}
}

// CardMessage builds an activity carrying a card
func CardMessage(card Card) Activity {
	return Activity{ID: xid.New().String(), Card: &card}
}

// Transcript collects the activities sent during one turn
type Transcript struct {
	activities []Activity
}

// Send appends activities to the transcript
func (t *Transcript) Send(activities ...Activity) {
	t.activities = append(t.activities, activities...)
}

// Responded reports whether anything was sent this turn
func (t *Transcript) Responded() bool {
	return len(t.activities) > 0
}

// Activities returns the sent activities in order
func (t *Transcript) Activities() []Activity {
	return t.activities
}
