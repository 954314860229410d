package get_blockers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashBot/internal/api/middleware"
	"github.com/m04kA/SMC-CarWashBot/internal/service/blockers"
)

const (
	msgMissingUser = "Missing user."
	msgForbidden   = "Access denied."
)

type Handler struct {
	service BlockerService
	logger  Logger
}

func NewHandler(service BlockerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blockers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAdminUser(r.Context())
	if !ok {
		h.logger.Warn("GET /blockers - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.List(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, blockers.ErrAccessDenied):
			h.logger.Warn("GET /blockers - Access denied: user_id=%s", user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /blockers - Failed to list blockers: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blockers - Blockers retrieved successfully: count=%d, user_id=%s", len(result), user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
