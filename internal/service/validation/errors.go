package validation

import "github.com/m04kA/SMC-CarWashBot/internal/domain"

// Сообщения, которые пользователь видит при отклонении ввода
const (
	MsgChooseService      = "Please choose at least one service!"
	MsgChooseOptionOrSkip = "Please choose one of the options or say skip!"
	MsgChooseSlot         = "Please choose one of the slots!"
	MsgDateTooFar         = "Sorry, you cannot make a reservation more than 365 days into the future."
	MsgDateInPast         = "Sorry, you cannot make a reservation in the past - the time machine is down 😊"
	MsgDateNotUnderstood  = "Sorry, I couldn't understand the date. Can you please rephrase it?"
	MsgInvalidPlateNumber = "This does not seem to be a vehicle plate number..."
	MsgAnswerYesOrNo      = "Please answer with yes or no."
)

// Rejection is returned by a validator that refuses the input.
// Message is sent to the user and the step stays suspended.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func (r *Rejection) Unwrap() error {
	return domain.ErrValidationRejected
}

func reject(msg string) error {
	return &Rejection{Message: msg}
}
