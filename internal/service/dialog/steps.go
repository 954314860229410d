package dialog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	"github.com/m04kA/SMC-CarWashBot/internal/service/slotcalendar"
	"github.com/m04kA/SMC-CarWashBot/internal/service/validation"
)

// Имена шагов диалога нового бронирования, сохраняются в DialogInstance.Step
const (
	stepInitialize        = "initialize"
	stepServices          = "services"
	stepRecommendedSlot   = "recommendedSlot"
	stepDate              = "date"
	stepSlot              = "slot"
	stepPlateConfirmation = "plateConfirmation"
	stepPlateNumber       = "plateNumber"
	stepPrivate           = "private"
	stepComment           = "comment"
	stepSubmit            = "submit"
)

type transitionKind int

const (
	transitionNext transitionKind = iota
	transitionWait
	transitionComplete
	transitionJump
)

type transition struct {
	kind   transitionKind
	target string
}

var (
	next     = transition{kind: transitionNext}
	wait     = transition{kind: transitionWait}
	complete = transition{kind: transitionComplete}
)

func jump(target string) transition {
	return transition{kind: transitionJump, target: target}
}

// result типизированный ответ пользователя на вопрос шага
type result struct {
	Kind      domain.PromptKind
	Services  []domain.ServiceType
	Choice    validation.Choice
	Date      time.Time
	Timex     *domain.Timex
	Confirmed bool
	Plate     string
	Text      string
	Declined  bool
}

// step один шаг диалога.
// prepare заполняет значения по умолчанию, known пропускает шаг, если ответ уже известен,
// enter отправляет вопрос, parse проверяет ответ, apply переносит его в черновик.
type step struct {
	name    string
	expects domain.PromptKind
	prepare func(t *turn)
	known   func(d *domain.ReservationDraft) bool
	enter   func(ctx context.Context, t *turn) (transition, error)
	parse   func(ctx context.Context, t *turn, in domain.Input) (result, error)
	apply   func(t *turn, r result) error
}

func (e *Engine) newReservationSteps() []step {
	return []step{
		{
			name:  stepInitialize,
			enter: e.initialize,
		},
		{
			name:    stepServices,
			expects: domain.PromptServices,
			known:   func(d *domain.ReservationDraft) bool { return len(d.Services) > 0 },
			enter:   e.promptServices,
			parse: func(_ context.Context, _ *turn, in domain.Input) (result, error) {
				services, err := validation.Services(in)
				return result{Kind: domain.PromptServices, Services: services}, err
			},
			apply: func(t *turn, r result) error {
				t.draft.Services = r.Services
				return nil
			},
		},
		{
			name:    stepRecommendedSlot,
			expects: domain.PromptRecommendedSlot,
			known:   hasStartDate,
			enter:   e.promptRecommendedSlot,
			parse: func(_ context.Context, t *turn, in domain.Input) (result, error) {
				choice, err := validation.RecommendedSlot(in, t.draft)
				return result{Kind: domain.PromptRecommendedSlot, Choice: choice}, err
			},
			apply: applyRecommendedSlot,
		},
		{
			name:    stepDate,
			expects: domain.PromptDate,
			known:   hasStartDate,
			enter: func(_ context.Context, t *turn) (transition, error) {
				t.ask(domain.Message(MsgAskDate))
				return wait, nil
			},
			parse: e.parseDate,
			apply: func(t *turn, r result) error {
				date := r.Date
				t.draft.StartDate = &date
				t.draft.Timex = r.Timex
				return nil
			},
		},
		{
			name:    stepSlot,
			expects: domain.PromptSlot,
			enter:   e.promptSlot,
			parse: func(_ context.Context, t *turn, in domain.Input) (result, error) {
				choice, err := validation.Slot(in, t.draft)
				return result{Kind: domain.PromptSlot, Choice: choice}, err
			},
			apply: applySlot,
		},
		{
			name:    stepPlateConfirmation,
			expects: domain.PromptConfirmation,
			prepare: func(t *turn) {
				if t.draft.VehiclePlateNumber == "" && t.draft.LastSettings != nil {
					t.draft.VehiclePlateNumber = t.draft.LastSettings.VehiclePlateNumber
				}
			},
			known: func(d *domain.ReservationDraft) bool {
				return d.VehiclePlateNumber == "" || d.VehiclePlateConfirmed
			},
			enter: func(_ context.Context, t *turn) (transition, error) {
				t.ask(domain.ChoicePrompt(fmt.Sprintf(MsgConfirmPlate, t.draft.VehiclePlateNumber), []string{MsgYes, MsgNo}))
				return wait, nil
			},
			parse: parseConfirmation,
			apply: func(t *turn, r result) error {
				t.draft.VehiclePlateConfirmed = r.Confirmed
				return nil
			},
		},
		{
			name:    stepPlateNumber,
			expects: domain.PromptPlateNumber,
			known: func(d *domain.ReservationDraft) bool {
				return d.VehiclePlateNumber != "" && d.VehiclePlateConfirmed
			},
			enter: func(_ context.Context, t *turn) (transition, error) {
				t.ask(domain.Message(MsgAskPlate))
				return wait, nil
			},
			parse: func(_ context.Context, _ *turn, in domain.Input) (result, error) {
				plate, err := validation.VehiclePlateNumber(in)
				return result{Kind: domain.PromptPlateNumber, Plate: plate}, err
			},
			apply: func(t *turn, r result) error {
				t.draft.VehiclePlateNumber = r.Plate
				t.draft.VehiclePlateConfirmed = true
				return nil
			},
		},
		{
			name:    stepPrivate,
			expects: domain.PromptConfirmation,
			known:   func(d *domain.ReservationDraft) bool { return d.IsPrivate != nil },
			enter: func(_ context.Context, t *turn) (transition, error) {
				t.ask(domain.ChoicePrompt(MsgAskPrivate, []string{MsgYes, MsgNo}))
				return wait, nil
			},
			parse: parseConfirmation,
			apply: func(t *turn, r result) error {
				private := r.Confirmed
				t.draft.IsPrivate = &private
				return nil
			},
		},
		{
			name:    stepComment,
			expects: domain.PromptText,
			known:   func(d *domain.ReservationDraft) bool { return d.Comment != "" },
			enter: func(_ context.Context, t *turn) (transition, error) {
				t.ask(domain.Message(MsgAskComment))
				return wait, nil
			},
			parse: func(_ context.Context, _ *turn, in domain.Input) (result, error) {
				comment, declined := validation.Comment(in)
				return result{Kind: domain.PromptText, Text: comment, Declined: declined}, nil
			},
			apply: func(t *turn, r result) error {
				if !r.Declined {
					t.draft.Comment = r.Text
				}
				return nil
			},
		},
		{
			name:  stepSubmit,
			enter: e.submit,
		},
	}
}

func hasStartDate(d *domain.ReservationDraft) bool {
	return d.StartDate != nil
}

func parseConfirmation(_ context.Context, _ *turn, in domain.Input) (result, error) {
	confirmed, err := validation.Confirmation(in)
	return result{Kind: domain.PromptConfirmation, Confirmed: confirmed}, err
}

// initialize переносит сущности исходной фразы в черновик и подгружает последние настройки
func (e *Engine) initialize(ctx context.Context, t *turn) (transition, error) {
	e.applyEntities(t)

	if t.draft.VehiclePlateNumber == "" {
		settings, err := e.api.GetLastSettings(ctx)
		if err != nil {
			return transition{}, err
		}
		t.draft.LastSettings = settings
	}
	return next, nil
}

func (e *Engine) applyEntities(t *turn) {
	d := t.draft
	for _, entity := range t.entities {
		switch entity.Kind {
		case domain.EntityService:
			if !containsService(d.Services, entity.Service) {
				d.Services = append(d.Services, entity.Service)
			}
		case domain.EntityDateTime:
			// Учитывается только первое выражение времени
			if d.Timex != nil || entity.Timex == nil {
				continue
			}
			d.Timex = entity.Timex
			if !entity.Timex.HasDate() {
				continue
			}
			date, err := validation.Date(entity.Timex, t.now)
			if err != nil {
				e.logger.Warn("Begin: key=%s - date %s ignored: %v", t.key, entity.Timex, err)
				d.Timex = nil
				continue
			}
			d.StartDate = &date
		case domain.EntityComment:
			d.Comment = entity.Text
		case domain.EntityPrivate:
			private := true
			d.IsPrivate = &private
		case domain.EntityVehiclePlateNumber:
			d.VehiclePlateNumber = validation.NormalizePlateNumber(entity.Text)
		}
	}
}

func containsService(services []domain.ServiceType, s domain.ServiceType) bool {
	for _, existing := range services {
		if existing == s {
			return true
		}
	}
	return false
}

func (e *Engine) promptServices(_ context.Context, t *turn) (transition, error) {
	card := domain.Card{Kind: domain.CardServiceSelection}
	if t.draft.LastSettings != nil {
		card.Services = t.draft.LastSettings.Services
	}
	t.ask(domain.Message(MsgSelectServices), domain.CardMessage(card))
	return wait, nil
}

func (e *Engine) promptRecommendedSlot(ctx context.Context, t *turn) (transition, error) {
	notAvailable, err := e.api.GetNotAvailable(ctx)
	if err != nil {
		return transition{}, err
	}

	slots, dropped := slotcalendar.RecommendSlots(*notAvailable, t.now)
	for _, err := range dropped {
		e.logger.Warn("RecommendedSlot: key=%s - candidate dropped: %v", t.key, err)
	}
	e.metrics.AddRecommendationsDropped(len(dropped))

	if len(slots) == 0 {
		e.logger.Info("RecommendedSlot: key=%s - no recommendations, asking for a date", t.key)
		return next, nil
	}

	labels := slotcalendar.SlotLabels(slots, t.now)
	t.draft.PresentChoices(domain.ChoiceListRecommended, slots, labels)
	t.ask(domain.ChoicePrompt(MsgRecommendSlots, labels))
	return wait, nil
}

func applyRecommendedSlot(t *turn, r result) error {
	d := t.draft
	if r.Choice.List != domain.ChoiceListRecommended || d.ChoiceList != domain.ChoiceListRecommended {
		return fmt.Errorf("%w: answer for list %q, presented %q", domain.ErrInternalProtocol, r.Choice.List, d.ChoiceList)
	}
	if r.Choice.Skipped {
		d.ClearChoices()
		return nil
	}
	if r.Choice.Index < 0 || r.Choice.Index >= len(d.RecommendedSlots) {
		return fmt.Errorf("%w: recommendation index %d out of range", domain.ErrInternalProtocol, r.Choice.Index)
	}

	slot := d.RecommendedSlots[r.Choice.Index]
	d.StartDate = &slot
	d.Timex = domain.TimexFromTime(slot)
	d.ClearChoices()
	return nil
}

func (e *Engine) parseDate(ctx context.Context, t *turn, in domain.Input) (result, error) {
	tx, err := e.dates.Resolve(ctx, in.Text, t.now)
	if err != nil {
		return result{}, err
	}
	date, err := validation.Date(tx, t.now)
	if err != nil {
		return result{}, err
	}
	return result{Kind: domain.PromptDate, Date: date, Timex: tx}, nil
}

// promptSlot проверяет выбранный слот по загрузке дня или предлагает свободные слоты.
// Загрузка запрашивается один раз за вход в шаг.
func (e *Engine) promptSlot(ctx context.Context, t *turn) (transition, error) {
	d := t.draft
	if d.StartDate == nil {
		return transition{}, fmt.Errorf("%w: slot step without a date", domain.ErrInternalProtocol)
	}
	date := *d.StartDate

	capacity, err := e.api.GetCapacity(ctx, date)
	if err != nil {
		return transition{}, err
	}

	if _, ok := domain.SlotByStartHour(date.Hour()); ok {
		if hasFreeCapacity(capacity, date) {
			return next, nil
		}
		t.say(domain.Message(MsgSlotFull))
	} else if d.Timex != nil {
		if slot, ok := slotcalendar.SlotForPartOfDay(d.Timex.PartOfDay); ok {
			y, m, day := date.Date()
			start := time.Date(y, m, day, slot.StartHour, 0, 0, 0, date.Location())
			d.StartDate = &start
			return next, nil
		}
	}

	open := slotcalendar.OpenSlotsOnDate(date, capacity)
	if len(open) == 0 {
		t.say(domain.Message(MsgNoSlotsOnDay))
		d.StartDate = nil
		d.Timex = nil
		return jump(stepDate), nil
	}

	slots := make([]time.Time, 0, len(open))
	for _, c := range open {
		slots = append(slots, c.StartTime)
	}
	labels := slotcalendar.SlotLabels(slots, t.now)
	d.PresentChoices(domain.ChoiceListSlots, slots, labels)
	t.ask(domain.ChoicePrompt(MsgChooseSlot, labels))
	return wait, nil
}

func hasFreeCapacity(capacity []domain.SlotCapacity, start time.Time) bool {
	for _, c := range capacity {
		if c.StartTime.Equal(start) && c.FreeCapacity > 0 {
			return true
		}
	}
	return false
}

func applySlot(t *turn, r result) error {
	d := t.draft
	if r.Choice.List != domain.ChoiceListSlots || d.ChoiceList != domain.ChoiceListSlots {
		return fmt.Errorf("%w: answer for list %q, presented %q", domain.ErrInternalProtocol, r.Choice.List, d.ChoiceList)
	}
	if r.Choice.Index < 0 || r.Choice.Index >= len(d.SlotChoices) {
		return fmt.Errorf("%w: slot index %d out of range", domain.ErrInternalProtocol, r.Choice.Index)
	}

	slot := d.SlotChoices[r.Choice.Index]
	d.StartDate = &slot
	d.Timex = nil
	d.ClearChoices()
	return nil
}

// submit отправляет бронирование и показывает его итоговое состояние
func (e *Engine) submit(ctx context.Context, t *turn) (transition, error) {
	if len(t.draft.Services) == 0 || t.draft.StartDate == nil {
		return transition{}, fmt.Errorf("%w: submit with incomplete draft", domain.ErrInternalProtocol)
	}

	reservation, err := e.submitter.Submit(ctx, t.draft)
	if err != nil {
		return transition{}, err
	}

	t.say(
		domain.Message(fmt.Sprintf(MsgReserved, slotcalendar.Natural(reservation.StartDate, t.now))),
		domain.Message(MsgReservedEmoji),
		domain.Message(MsgReservationState),
		domain.CardMessage(domain.Card{Kind: domain.CardReservationSummary, Reservation: reservation}),
	)

	e.logger.Info("%s key=%s, reservation=%s", logNewReservation, t.key, reservation.ID)
	e.metrics.IncReservationsCreated()
	return complete, nil
}
