package dialog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/validation"
)

// Engine ведёт диалог нового бронирования по шагам.
// Состояние между ходами хранится только в Store, поэтому после перезапуска
// процесса диалог продолжается с того же шага.
type Engine struct {
	steps []step
	index map[string]int

	api          BookingAPI
	submitter    Submitter
	dates        DateResolver
	store        Store
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewEngine создает новый экземпляр движка диалога бронирования
func NewEngine(
	store Store,
	api BookingAPI,
	submitter Submitter,
	dates DateResolver,
	metrics Metrics,
	logger Logger,
) *Engine {
	e := &Engine{
		api:          api,
		submitter:    submitter,
		dates:        dates,
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
	e.steps = e.newReservationSteps()
	e.index = make(map[string]int, len(e.steps))
	for i, s := range e.steps {
		e.index[s.name] = i
	}
	return e
}

// turn контекст одного хода движка
type turn struct {
	key      domain.ConversationKey
	inst     *domain.DialogInstance
	draft    *domain.ReservationDraft
	entities []domain.Entity
	now      time.Time
	out      Responder
	prompt   []domain.Activity
}

// say отправляет сообщение, которое не нужно повторять при переспросе
func (t *turn) say(activities ...domain.Activity) {
	t.out.Send(activities...)
}

// ask отправляет вопрос шага и запоминает его для Reprompt
func (t *turn) ask(activities ...domain.Activity) {
	t.out.Send(activities...)
	t.prompt = append(t.prompt, activities...)
}

func (e *Engine) newTurn(key domain.ConversationKey, inst *domain.DialogInstance, out Responder) *turn {
	return &turn{
		key:   key,
		inst:  inst,
		draft: &inst.Draft,
		now:   e.timeProvider.Now(),
		out:   out,
	}
}

// Active проверяет, есть ли у беседы приостановленный диалог
func (e *Engine) Active(ctx context.Context, key domain.ConversationKey) (bool, error) {
	inst, err := e.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return inst != nil, nil
}

// Begin начинает новый диалог бронирования с сущностями, распознанными в исходной фразе
func (e *Engine) Begin(ctx context.Context, key domain.ConversationKey, entities []domain.Entity, out Responder) (Outcome, error) {
	inst := &domain.DialogInstance{
		Dialog:    domain.DialogNewReservation,
		StartedAt: e.timeProvider.Now(),
	}
	t := e.newTurn(key, inst, out)
	t.entities = entities

	e.logger.Info("Begin: dialog=%s, key=%s, entities=%d", inst.Dialog, key, len(entities))
	return e.run(ctx, t, 0)
}

// Resume передаёт ответ пользователя приостановленному шагу.
// Без активного диалога возвращает OutcomeEmpty и ничего не отправляет.
func (e *Engine) Resume(ctx context.Context, key domain.ConversationKey, in domain.Input, out Responder) (Outcome, error) {
	inst, err := e.store.Get(ctx, key)
	if err != nil {
		return OutcomeEmpty, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if inst == nil {
		return OutcomeEmpty, nil
	}

	t := e.newTurn(key, inst, out)

	idx, ok := e.index[inst.Step]
	if !ok || inst.Dialog != domain.DialogNewReservation {
		return e.fail(ctx, t, inst.Step, fmt.Errorf("%w: unknown step %q of dialog %q", domain.ErrInternalProtocol, inst.Step, inst.Dialog))
	}

	s := e.steps[idx]
	if s.expects == domain.PromptNone || inst.Pending != s.expects {
		return e.fail(ctx, t, s.name, fmt.Errorf("%w: step %q expects %q, suspended with %q",
			domain.ErrInternalProtocol, s.name, s.expects, inst.Pending))
	}

	res, err := s.parse(ctx, t, in)
	if err != nil {
		var rejection *validation.Rejection
		if errors.As(err, &rejection) {
			// Черновик не меняется, шаг остаётся в ожидании
			t.say(domain.Message(rejection.Message))
			return e.finish(OutcomeWaiting), nil
		}
		return e.fail(ctx, t, s.name, err)
	}

	if res.Kind != s.expects {
		return e.fail(ctx, t, s.name, fmt.Errorf("%w: step %q got result %q", domain.ErrInternalProtocol, s.name, res.Kind))
	}
	if err := s.apply(t, res); err != nil {
		return e.fail(ctx, t, s.name, err)
	}

	inst.Prompt = nil
	return e.run(ctx, t, idx+1)
}

// Reprompt повторяет вопрос приостановленного шага
func (e *Engine) Reprompt(ctx context.Context, key domain.ConversationKey, out Responder) (bool, error) {
	inst, err := e.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if inst == nil {
		return false, nil
	}
	out.Send(inst.Prompt...)
	return true, nil
}

// Cancel удаляет приостановленный диалог. Возвращает true, если он был.
func (e *Engine) Cancel(ctx context.Context, key domain.ConversationKey) (bool, error) {
	inst, err := e.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if inst == nil {
		return false, nil
	}
	if err := e.store.Clear(ctx, key); err != nil {
		return true, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	e.logger.Info("Cancel: dialog=%s, key=%s, step=%s", inst.Dialog, key, inst.Step)
	e.metrics.ObserveDialogOutcome(inst.Dialog, "cancelled")
	return true, nil
}

// Abort завершает активный диалог с ошибкой, возникшей вне движка.
// Без активного диалога возвращает OutcomeEmpty.
func (e *Engine) Abort(ctx context.Context, key domain.ConversationKey, cause error, out Responder) (Outcome, error) {
	inst, err := e.store.Get(ctx, key)
	if err != nil {
		return OutcomeEmpty, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if inst == nil {
		return OutcomeEmpty, nil
	}
	return e.fail(ctx, e.newTurn(key, inst, out), inst.Step, cause)
}

// run исполняет шаги начиная с from, пока один из них не приостановится или диалог не завершится
func (e *Engine) run(ctx context.Context, t *turn, from int) (Outcome, error) {
	for i := from; i < len(e.steps); {
		s := e.steps[i]

		if s.prepare != nil {
			s.prepare(t)
		}
		if s.known != nil && s.known(t.draft) {
			i++
			continue
		}

		tr, err := s.enter(ctx, t)
		if err != nil {
			return e.fail(ctx, t, s.name, err)
		}

		switch tr.kind {
		case transitionNext:
			i++
		case transitionJump:
			target, ok := e.index[tr.target]
			if !ok {
				return e.fail(ctx, t, s.name, fmt.Errorf("%w: jump to unknown step %q", domain.ErrInternalProtocol, tr.target))
			}
			i = target
		case transitionWait:
			if s.expects == domain.PromptNone {
				return e.fail(ctx, t, s.name, fmt.Errorf("%w: step %q cannot wait", domain.ErrInternalProtocol, s.name))
			}
			t.inst.Step = s.name
			t.inst.Pending = s.expects
			t.inst.Prompt = t.prompt
			if err := e.store.Set(ctx, t.key, t.inst); err != nil {
				return OutcomeWaiting, fmt.Errorf("%w: %v", ErrStorage, err)
			}
			return e.finish(OutcomeWaiting), nil
		case transitionComplete:
			if err := e.store.Clear(ctx, t.key); err != nil {
				return OutcomeComplete, fmt.Errorf("%w: %v", ErrStorage, err)
			}
			return e.finish(OutcomeComplete), nil
		}
	}

	return e.fail(ctx, t, "", fmt.Errorf("%w: dialog ended without submit", domain.ErrInternalProtocol))
}

// fail отправляет пользователю причину прерывания и очищает состояние диалога
func (e *Engine) fail(ctx context.Context, t *turn, stepName string, cause error) (Outcome, error) {
	switch {
	case errors.Is(cause, domain.ErrAuthExpired):
		e.logger.Warn("Dialog: step=%s, key=%s - authentication expired", stepName, t.key)
		t.say(NotAuthenticated())
	case errors.Is(cause, domain.ErrInternalProtocol):
		e.logger.Error("Dialog: step=%s, key=%s - protocol error: %v", stepName, t.key, cause)
		t.say(domain.Message(MsgSomethingWentWrong))
	default:
		e.logger.Error("Dialog: step=%s, key=%s - aborted: %v", stepName, t.key, cause)
		t.say(domain.Message(userMessage(cause)))
	}

	if err := e.store.Clear(ctx, t.key); err != nil {
		return OutcomeAborted, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return e.finish(OutcomeAborted), nil
}

func (e *Engine) finish(outcome Outcome) Outcome {
	e.metrics.ObserveDialogOutcome(domain.DialogNewReservation, outcome.String())
	return outcome
}

// NotAuthenticated сообщение с карточкой входа, которое отправляется при истёкшей авторизации
func NotAuthenticated() domain.Activity {
	a := domain.CardMessage(domain.Card{Kind: domain.CardSignIn, Title: MsgSignIn})
	a.Text = MsgNotAuthenticated
	return a
}

// userMessage текст ошибки внешнего сервиса, показываемый пользователю как есть
func userMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
