package get_blocker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashBot/internal/api/middleware"
	"github.com/m04kA/SMC-CarWashBot/internal/service/blockers"
)

const (
	msgMissingUser = "Missing user."
	msgNotFound    = "Blocker not found."
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

// Handle GET /api/v1/blockers/{blockerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockerID := mux.Vars(r)["blockerId"]

	user, ok := middleware.GetAdminUser(r.Context())
	if !ok {
		h.logger.Warn("GET /blockers/{id} - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	blocker, err := h.service.GetByID(r.Context(), user, blockerID)
	if err != nil {
		switch {
		case errors.Is(err, blockers.ErrBlockerNotFound):
			h.logger.Warn("GET /blockers/{id} - Blocker not found: blocker_id=%s", blockerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blockers.ErrAccessDenied):
			h.logger.Warn("GET /blockers/{id} - Access denied: blocker_id=%s, user_id=%s", blockerID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /blockers/{id} - Failed to get blocker: blocker_id=%s, error=%v", blockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, blocker)
}
