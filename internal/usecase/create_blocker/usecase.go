package create_blocker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// UseCase use case для создания блокировки бронирований
type UseCase struct {
	blockerRepo     BlockerRepository
	reservationRepo ReservationRepository
	mailer          Mailer
	txManager       TransactionManager
	metrics         Metrics
	contact         string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockerRepo BlockerRepository,
	reservationRepo ReservationRepository,
	mailer Mailer,
	txManager TransactionManager,
	metrics Metrics,
	contact string,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockerRepo:     blockerRepo,
		reservationRepo: reservationRepo,
		mailer:          mailer,
		txManager:       txManager,
		metrics:         metrics,
		contact:         contact,
		logger:          logger,
	}
}

// Execute выполняет use case создания блокировки.
// Проверка пересечений, удаление попавших в блокировку бронирований и вставка идут
// в одной сериализуемой транзакции. Письма владельцам отправляются после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Права доступа
	if !req.User.CanManageBlockers() {
		uc.logger.Warn("CreateBlocker: user is not a carwash admin")
		return nil, ErrForbidden
	}

	uc.logger.Info("CreateBlocker: user=%s, start=%s", req.User.ID, req.StartDate.Format(domain.DateTimeFormat))

	// 2. Валидация входных данных
	end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBlocker: validation failed: %v", err)
		return nil, err
	}

	blocker := &domain.Blocker{
		ID:        uuid.NewString(),
		StartDate: req.StartDate,
		EndDate:   &end,
		Comment:   req.Comment,
		CreatedBy: req.User.ID,
	}

	var (
		created *domain.Blocker
		deleted []domain.ReservationOwner
	)

	// 3. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокировки не могут пересекаться
		overlapping, err := uc.blockerRepo.ListOverlapping(txCtx, blocker.StartDate, end)
		if err != nil {
			uc.logger.Error("CreateBlocker: failed to list overlapping blockers: %v", err)
			return fmt.Errorf("%w: failed to list overlapping blockers: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBlocker: overlaps blocker id=%s", overlapping[0].ID)
			return ErrOverlapping
		}

		// 3.2. Удаляем бронирования, попавшие внутрь блокировки
		deleted, err = uc.reservationRepo.DeleteWithin(txCtx, blocker.StartDate, end)
		if err != nil {
			uc.logger.Error("CreateBlocker: failed to delete reservations: %v", err)
			return fmt.Errorf("%w: failed to delete reservations: %v", ErrInternal, err)
		}

		// 3.3. Сохраняем блокировку
		created, err = uc.blockerRepo.Create(txCtx, blocker)
		if err != nil {
			uc.logger.Error("CreateBlocker: failed to create blocker: %v", err)
			return fmt.Errorf("%w: failed to create blocker: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBlocker: created blocker id=%s, deleted %d reservations", created.ID, len(deleted))
	uc.metrics.IncBlockersCreated()

	// 4. Уведомляем владельцев удалённых бронирований, ошибки только логируются
	for _, owner := range deleted {
		if err := uc.mailer.Send(ctx, deletedReservationEmail(owner, uc.contact)); err != nil {
			uc.logger.Error("CreateBlocker: failed to notify owner of reservation id=%s: %v", owner.Reservation.ID, err)
		}
	}

	return &Response{
		ID:                  created.ID,
		StartDate:           created.StartDate,
		EndDate:             end,
		Comment:             created.Comment,
		CreatedBy:           created.CreatedBy,
		CreatedAt:           created.CreatedAt,
		DeletedReservations: len(deleted),
	}, nil
}
