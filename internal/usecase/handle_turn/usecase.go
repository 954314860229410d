package handle_turn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/carwashapi"
	"github.com/m04kA/SMC-CarWashBot/internal/service/dialog"
	"github.com/m04kA/SMC-CarWashBot/internal/service/slotcalendar"
)

// UseCase use case обработки одного входящего события бота
type UseCase struct {
	engine       DialogEngine
	classifier   Classifier
	knowledge    KnowledgeBase
	reservations ReservationService
	profiles     ProfileStore
	locker       Locker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine DialogEngine,
	classifier Classifier,
	knowledge KnowledgeBase,
	reservations ReservationService,
	profiles ProfileStore,
	locker Locker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		classifier:   classifier,
		knowledge:    knowledge,
		reservations: reservations,
		profiles:     profiles,
		locker:       locker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает событие. Ходы одной беседы выполняются строго по очереди,
// профиль пользователя сохраняется в конце каждого хода.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ev := &req.Event
	if ev.ChannelID == "" || ev.ConversationID == "" || ev.UserID == "" {
		return nil, fmt.Errorf("%w: channel, conversation and user ids are required", ErrInvalidInput)
	}

	key := ev.Key()
	unlock := uc.locker.Lock(key.String())
	defer unlock()

	if req.Token != "" {
		ctx = carwashapi.WithToken(ctx, req.Token)
	}

	profile, err := uc.profiles.Get(ctx, key, func() domain.UserProfile { return domain.UserProfile{} })
	if err != nil {
		uc.logger.Error("HandleTurn: key=%s - failed to load profile: %v", key, err)
		return nil, fmt.Errorf("%w: failed to load profile: %v", ErrInternal, err)
	}

	out := &domain.Transcript{}
	outcome := dialog.OutcomeEmpty

	switch ev.Type {
	case domain.EventConversationUpdate:
		if !profile.WelcomeMessageSent {
			uc.sendWelcome(out, ev.UserName)
			profile.WelcomeMessageSent = true
		}
	case domain.EventMessage:
		outcome, err = uc.handleMessage(ctx, req, key, &profile, out)
	default:
		err = fmt.Errorf("%w: unsupported event type %q", ErrInvalidInput, ev.Type)
	}

	if saveErr := uc.profiles.Save(ctx, key, profile); saveErr != nil {
		uc.logger.Error("HandleTurn: key=%s - failed to save profile: %v", key, saveErr)
		if err == nil {
			err = fmt.Errorf("%w: failed to save profile: %v", ErrInternal, saveErr)
		}
	}
	if err != nil {
		return nil, err
	}

	return &Response{
		Activities: out.Activities(),
		Outcome:    outcome.String(),
	}, nil
}

func (uc *UseCase) handleMessage(
	ctx context.Context,
	req *Request,
	key domain.ConversationKey,
	profile *domain.UserProfile,
	out *domain.Transcript,
) (dialog.Outcome, error) {
	ev := &req.Event
	text := strings.ToLower(strings.TrimSpace(ev.Text))

	// Нажатие кнопки карточки приходит без текста
	if text == "" {
		action, _ := ev.Value["action"].(string)
		switch action {
		case actionDropoff, actionCancel:
			uc.logger.Info("HandleTurn: key=%s - card action %s redirected to the app", key, action)
			out.Send(openAppCard())
			return dialog.OutcomeEmpty, nil
		}
		return uc.resume(ctx, key, domain.Input{Value: ev.Value}, out)
	}

	switch text {
	case commandHelp:
		uc.sendWelcome(out, ev.UserName)
		profile.WelcomeMessageSent = true
		return dialog.OutcomeEmpty, nil
	case commandLogin:
		uc.login(ctx, req.Token != "", out)
		return dialog.OutcomeEmpty, nil
	case commandLogout:
		out.Send(domain.Message(msgSignedOut))
		return dialog.OutcomeEmpty, nil
	}

	recognition, err := uc.classifier.Classify(ctx, ev.Text)
	if err != nil {
		uc.logger.Error("HandleTurn: key=%s - classification failed: %v", key, err)
		outcome, abortErr := uc.engine.Abort(ctx, key, err, out)
		if abortErr != nil {
			return outcome, fmt.Errorf("%w: %v", ErrInternal, abortErr)
		}
		if outcome == dialog.OutcomeEmpty {
			uc.sendServiceError(out, err)
		}
		return outcome, nil
	}
	uc.logger.Info("HandleTurn: key=%s, intent=%s, score=%.2f, entities=%d",
		key, recognition.Intent, recognition.Score, len(recognition.Entities))

	switch recognition.Intent {
	case domain.IntentStop:
		return uc.stop(ctx, key, out)
	case domain.IntentHelp:
		return uc.help(ctx, key, out)
	}

	outcome, err := uc.resume(ctx, key, domain.Input{Text: strings.TrimSpace(ev.Text), Value: ev.Value}, out)
	if err != nil || outcome != dialog.OutcomeEmpty {
		return outcome, err
	}

	return uc.route(ctx, req, key, recognition, out)
}

func (uc *UseCase) resume(ctx context.Context, key domain.ConversationKey, in domain.Input, out *domain.Transcript) (dialog.Outcome, error) {
	outcome, err := uc.engine.Resume(ctx, key, in, out)
	if err != nil {
		uc.logger.Error("HandleTurn: key=%s - resume failed: %v", key, err)
		return outcome, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return outcome, nil
}

// stop отменяет активный диалог
func (uc *UseCase) stop(ctx context.Context, key domain.ConversationKey, out *domain.Transcript) (dialog.Outcome, error) {
	cancelled, err := uc.engine.Cancel(ctx, key)
	if err != nil {
		return dialog.OutcomeEmpty, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if cancelled {
		out.Send(domain.Message(msgContextChanged))
		return dialog.OutcomeAborted, nil
	}
	out.Send(domain.Message(msgHowCanIHelp))
	return dialog.OutcomeEmpty, nil
}

// help подсказывает возможности бота и повторяет вопрос активного диалога
func (uc *UseCase) help(ctx context.Context, key domain.ConversationKey, out *domain.Transcript) (dialog.Outcome, error) {
	out.Send(domain.Message(msgHelpIntro), domain.Message(msgHelpAbilities))

	reprompted, err := uc.engine.Reprompt(ctx, key, out)
	if err != nil {
		return dialog.OutcomeEmpty, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if reprompted {
		return dialog.OutcomeWaiting, nil
	}
	return dialog.OutcomeEmpty, nil
}

// route обрабатывает намерение, когда активного диалога нет
func (uc *UseCase) route(
	ctx context.Context,
	req *Request,
	key domain.ConversationKey,
	recognition *domain.Recognition,
	out *domain.Transcript,
) (dialog.Outcome, error) {
	switch recognition.Intent {
	case domain.IntentNewReservation:
		outcome, err := uc.engine.Begin(ctx, key, recognition.Entities, out)
		if err != nil {
			return outcome, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return outcome, nil

	case domain.IntentEditReservation, domain.IntentCancelReservation:
		out.Send(openAppCard())

	case domain.IntentFindReservation:
		reservations, err := uc.reservations.Active(ctx)
		if err != nil {
			uc.sendServiceError(out, err)
			break
		}
		if len(reservations) == 0 {
			out.Send(domain.Message(msgNoActive))
			break
		}
		for i := range reservations {
			out.Send(domain.CardMessage(domain.Card{Kind: domain.CardReservationSummary, Reservation: &reservations[i]}))
		}

	case domain.IntentNextFreeSlot:
		now := uc.timeProvider.Now()
		slot, err := uc.reservations.NextFreeSlot(ctx, now)
		switch {
		case errors.Is(err, domain.ErrNoOpenSlot):
			out.Send(domain.Message(msgNoFreeSlot))
		case err != nil:
			uc.sendServiceError(out, err)
		default:
			out.Send(domain.Message(fmt.Sprintf(msgNextFreeSlot, slotcalendar.Natural(slot, now))))
		}

	case domain.IntentWeather:
		out.Send(domain.Message(msgWeather))

	case domain.IntentNone:
		if answer, ok := uc.knowledge.Answer(ctx, req.Event.Text); ok {
			out.Send(domain.Message(answer))
			break
		}
		uc.understandingFailed(req, recognition.Intent, out)

	default:
		uc.understandingFailed(req, recognition.Intent, out)
	}

	return dialog.OutcomeEmpty, nil
}

func (uc *UseCase) login(ctx context.Context, hasToken bool, out *domain.Transcript) {
	if !hasToken {
		out.Send(domain.CardMessage(domain.Card{Kind: domain.CardSignIn, Title: dialog.MsgSignIn}))
		return
	}

	out.Send(domain.Message(msgLoggedIn))

	reservations, err := uc.reservations.Active(ctx)
	if err != nil {
		uc.sendServiceError(out, err)
		return
	}

	switch len(reservations) {
	case 0:
		out.Send(domain.Message(msgNoReservations))
	case 1:
		out.Send(domain.Message(msgOneReservation))
	default:
		out.Send(domain.Message(fmt.Sprintf(msgManyReservations, len(reservations))))
	}
}

func (uc *UseCase) sendWelcome(out *domain.Transcript, name string) {
	greeting := msgWelcome
	if name != "" {
		greeting = fmt.Sprintf(msgWelcomeName, name)
	}
	out.Send(
		domain.Message(greeting),
		domain.Message(msgIntroduction),
		domain.Message(msgExamples),
		domain.ChoicePrompt(msgLoginFirst, []string{commandLogin, msgHowToUse, msgInteriorCost}),
	)
}

// understandingFailed аналитическое событие: фразу не удалось обработать
func (uc *UseCase) understandingFailed(req *Request, intent string, out *domain.Transcript) {
	ev := &req.Event
	uc.logger.Warn("%s: intent=%s, none=%t, channel=%s, conversation=%s, user=%s, message=%q",
		logUnderstanding, intent, intent == domain.IntentNone, ev.ChannelID, ev.ConversationID, ev.UserID, ev.Text)
	uc.metrics.IncUnderstandingFailed(intent)
	out.Send(domain.Message(msgNotUnderstood))
}

// sendServiceError показывает ошибку внешнего сервиса вне диалога
func (uc *UseCase) sendServiceError(out *domain.Transcript, err error) {
	if errors.Is(err, domain.ErrAuthExpired) {
		out.Send(dialog.NotAuthenticated())
		return
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		out.Send(domain.Message(apiErr.Message))
		return
	}
	out.Send(domain.Message(err.Error()))
}

func openAppCard() domain.Activity {
	return domain.CardMessage(domain.Card{
		Kind:  domain.CardOpenApp,
		Title: msgOpenAppTitle,
		Text:  msgOpenApp,
		URL:   domain.AppURL,
	})
}
