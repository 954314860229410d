package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	stateRepo "github.com/m04kA/SMC-CarWashBot/internal/infra/storage/state"
)

const (
	dialogKeyPrefix  = "dialog:"
	profileKeyPrefix = "profile:"
)

// accessor сериализует значения типа T в JSON поверх Repository
type accessor[T any] struct {
	repo   Repository
	prefix string
}

func (a accessor[T]) get(ctx context.Context, key string) (T, bool, error) {
	var value T

	raw, err := a.repo.Get(ctx, a.prefix+key)
	if errors.Is(err, stateRepo.ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("%w: get %s: %v", ErrStorage, key, err)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("%w: %s: %v", ErrCorruptedState, key, err)
	}
	return value, true, nil
}

func (a accessor[T]) set(ctx context.Context, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrCorruptedState, key, err)
	}
	if err := a.repo.Set(ctx, a.prefix+key, raw); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (a accessor[T]) clear(ctx context.Context, key string) error {
	if err := a.repo.Delete(ctx, a.prefix+key); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrStorage, key, err)
	}
	return nil
}

// DialogStore хранит состояние активного диалога по ключу (канал, беседа, пользователь)
type DialogStore struct {
	dialogs accessor[*domain.DialogInstance]
}

func NewDialogStore(repo Repository) *DialogStore {
	return &DialogStore{dialogs: accessor[*domain.DialogInstance]{repo: repo, prefix: dialogKeyPrefix}}
}

// Get возвращает активный диалог или nil, если диалога нет
func (s *DialogStore) Get(ctx context.Context, key domain.ConversationKey) (*domain.DialogInstance, error) {
	inst, _, err := s.dialogs.get(ctx, key.String())
	return inst, err
}

func (s *DialogStore) Set(ctx context.Context, key domain.ConversationKey, inst *domain.DialogInstance) error {
	return s.dialogs.set(ctx, key.String(), inst)
}

func (s *DialogStore) Clear(ctx context.Context, key domain.ConversationKey) error {
	return s.dialogs.clear(ctx, key.String())
}

// ProfileStore хранит профиль пользователя между беседами
type ProfileStore struct {
	profiles accessor[domain.UserProfile]
}

func NewProfileStore(repo Repository) *ProfileStore {
	return &ProfileStore{profiles: accessor[domain.UserProfile]{repo: repo, prefix: profileKeyPrefix}}
}

// Get возвращает профиль или значение def(), если профиль ещё не сохранялся
func (s *ProfileStore) Get(ctx context.Context, key domain.ConversationKey, def func() domain.UserProfile) (domain.UserProfile, error) {
	profile, ok, err := s.profiles.get(ctx, key.UserKey())
	if err != nil {
		return domain.UserProfile{}, err
	}
	if !ok {
		return def(), nil
	}
	return profile, nil
}

func (s *ProfileStore) Save(ctx context.Context, key domain.ConversationKey, profile domain.UserProfile) error {
	return s.profiles.set(ctx, key.UserKey(), profile)
}
