package dialog

// Тексты, которые бот отправляет пользователю во время диалога бронирования
const (
	MsgNotAuthenticated   = "It seems you are not logged in. Please type 'login' to sign in."
	MsgSignIn             = "Click to sign in!"
	MsgSomethingWentWrong = "Sorry, something went wrong. Please start over."
	MsgSelectServices     = "Please select from these services!"
	MsgRecommendSlots     = "Can I recommend you one of these slots? If you want to choose something else, just type skip."
	MsgAskDate            = "When do you want to wash your car?"
	MsgSlotFull           = "Sorry, this slot is already full."
	MsgChooseSlot         = "Please choose one of these slots:"
	MsgNoSlotsOnDay       = "Sorry, there are no free slots on that day. Please choose another date!"
	MsgConfirmPlate       = "I have %s as your plate number, is that correct?"
	MsgAskPlate           = "What's your vehicle plate number?"
	MsgAskPrivate         = "Is this your private (not company-owned, but privately held) car?"
	MsgAskComment         = "Any other comment?"
	MsgReserved           = "OK, I have reserved a car wash for %s."
	MsgReservedEmoji      = "🚗"
	MsgReservationState   = "Here is the current state of your reservation. I'll let you know when you will need to drop off the keys."
	MsgYes                = "Yes"
	MsgNo                 = "No"
	logNewReservation     = "New reservation from chat bot."
)
