package create_blocker

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashBot/internal/api/middleware"
	createBlocker "github.com/m04kA/SMC-CarWashBot/internal/usecase/create_blocker"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgMissingUser        = "Missing user."
	msgForbidden          = "Only car wash admins can create blockers."
	msgInvalidTimeRange   = "Blocker end time should be after the start time."
	msgOverlapping        = "Two blocker cannot overlap each other."
)

type Handler struct {
	useCase CreateBlockerUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blockers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAdminUser(r.Context())
	if !ok {
		h.logger.Warn("POST /blockers - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBlockerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blockers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user))
	if err != nil {
		switch {
		case errors.Is(err, createBlocker.ErrForbidden):
			h.logger.Warn("POST /blockers - Access denied: user_id=%s", user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBlocker.ErrInvalidTimeRange):
			h.logger.Warn("POST /blockers - Invalid time range: user_id=%s", user.ID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBlocker.ErrOverlapping):
			h.logger.Warn("POST /blockers - Overlapping blocker: user_id=%s", user.ID)
			handlers.RespondBadRequest(w, msgOverlapping)

		case errors.Is(err, createBlocker.ErrInvalidInput):
			h.logger.Warn("POST /blockers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /blockers - Failed to create blocker: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blockers - Blocker created successfully: blocker_id=%s, user_id=%s, deleted=%d",
		result.ID, user.ID, result.DeletedReservations)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
