package blockers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
	blockerRepo "github.com/m04kA/SMC-CarWashBot/internal/infra/storage/blocker"
	"github.com/m04kA/SMC-CarWashBot/internal/service/blockers/models"
)

// Service сервис чтения и удаления блокировок
type Service struct {
	blockerRepo BlockerRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockerRepo BlockerRepository, logger Logger) *Service {
	return &Service{
		blockerRepo: blockerRepo,
		logger:      logger,
	}
}

// List возвращает все блокировки, начиная с самых поздних.
// Доступно администраторам и администраторам автомойки.
func (s *Service) List(ctx context.Context, user *domain.AdminUser) ([]*models.BlockerResponse, error) {
	if !user.CanViewBlockers() {
		s.logger.Warn("List: access denied")
		return nil, ErrAccessDenied
	}

	blockers, err := s.blockerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d blockers for user=%s", len(blockers), user.ID)
	return models.FromDomainBlockerList(blockers), nil
}

// GetByID получает блокировку по ID
func (s *Service) GetByID(ctx context.Context, user *domain.AdminUser, id string) (*models.BlockerResponse, error) {
	if !user.CanViewBlockers() {
		s.logger.Warn("GetByID: access denied to blocker id=%s", id)
		return nil, ErrAccessDenied
	}

	blocker, err := s.blockerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockerRepo.ErrBlockerNotFound) {
			s.logger.Warn("GetByID: blocker id=%s not found", id)
			return nil, ErrBlockerNotFound
		}
		s.logger.Error("GetByID: repository error for blocker id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlocker(blocker), nil
}

// Delete удаляет блокировку. Доступно только администраторам автомойки.
// Удалённые при создании блокировки бронирования не восстанавливаются.
func (s *Service) Delete(ctx context.Context, user *domain.AdminUser, id string) error {
	if !user.CanManageBlockers() {
		s.logger.Warn("Delete: access denied to blocker id=%s", id)
		return ErrAccessDenied
	}

	if err := s.blockerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockerRepo.ErrBlockerNotFound) {
			s.logger.Warn("Delete: blocker id=%s not found", id)
			return ErrBlockerNotFound
		}
		s.logger.Error("Delete: repository error for blocker id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocker id=%s deleted by user=%s", id, user.ID)
	return nil
}
