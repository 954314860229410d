package delete_blocker

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
	msgForbidden   = "Only car wash admins can delete blockers."
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

// Handle DELETE /api/v1/blockers/{blockerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockerID := mux.Vars(r)["blockerId"]

	user, ok := middleware.GetAdminUser(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blockers/{id} - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Delete(r.Context(), user, blockerID); err != nil {
		switch {
		case errors.Is(err, blockers.ErrBlockerNotFound):
			h.logger.Warn("DELETE /blockers/{id} - Blocker not found: blocker_id=%s", blockerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blockers.ErrAccessDenied):
			h.logger.Warn("DELETE /blockers/{id} - Access denied: blocker_id=%s, user_id=%s", blockerID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /blockers/{id} - Failed to delete blocker: blocker_id=%s, error=%v", blockerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blockers/{id} - Blocker deleted successfully: blocker_id=%s, user_id=%s", blockerID, user.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
