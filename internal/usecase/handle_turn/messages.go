package handle_turn

// Команды, которые обрабатываются без классификатора
const (
	commandHelp   = "help"
	commandLogin  = "login"
	commandLogout = "logout"
)

// Действия карточек
const (
	actionDropoff = "dropoff"
	actionCancel  = "cancel"
)

const (
	msgWelcomeName      = "Hi %s!"
	msgWelcome          = "Hi!"
	msgIntroduction     = "My name is C.I.C.A. (Cool and Intelligent Carwash Assistant) and I'm your bot 🤖 who will help you reserve car washing services and answer your questions."
	msgExamples         = "Ask me questions like 'How to use the app?' or 'What does interior cleaning cost?'."
	msgLoginFirst       = "Or I can make reservations for you. But before that you need to log in by typing 'login'."
	msgHowToUse         = "How to use the app?"
	msgInteriorCost     = "What does interior cleaning cost?"
	msgLoggedIn         = "You are now logged in."
	msgNoReservations   = "No pending reservations. Get started by making a new reservation!"
	msgOneReservation   = "I have found an active reservation!"
	msgManyReservations = "Nice! You have %d reservations in-progress."
	msgSignedOut        = "You have been signed out."
	msgContextChanged   = "Sorry, I haven't noticed that the context changed. How can I help you?"
	msgHowCanIHelp      = "How can I help you?"
	msgHelpIntro        = "Let me try to provide some help."
	msgHelpAbilities    = "You can ask me about the state of your reservations, ask to make a new reservation for you or confirm the key drop-off."
	msgOpenApp          = "Please open the app to make modifications to your reservations."
	msgOpenAppTitle     = "Open the app"
	msgNoActive         = "You don't have any active reservations."
	msgNextFreeSlot     = "The next free slot is %s."
	msgNoFreeSlot       = "Sorry, I couldn't find a free slot."
	msgWeather          = "They say, I'll get access to the internet soon, and will be able to answer what the weather will look like..."
	msgNotUnderstood    = "I didn't understand what you just said to me."
	logUnderstanding    = "Understanding user failed"
)
