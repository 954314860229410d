package get_configuration

import (
	"net/http"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
)

type Handler struct {
	service ConfigurationService
}

func NewHandler(service ConfigurationService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/.well-known/configuration
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Get(r.Context()))
}
