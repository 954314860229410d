package handle_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashBot/internal/api/middleware"
	handleTurn "github.com/m04kA/SMC-CarWashBot/internal/usecase/handle_turn"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgTooManyRequests    = "Too many messages, please slow down."
)

type Handler struct {
	useCase HandleTurnUseCase
	limiter RateLimiter
	logger  Logger
}

func NewHandler(useCase HandleTurnUseCase, limiter RateLimiter, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		limiter: limiter,
		logger:  logger,
	}
}

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Лимит считается на пользователя канала
	if !h.limiter.Allow(req.ChannelID + "/" + req.From.ID) {
		h.logger.Warn("POST /messages - Rate limited: channel=%s, user=%s", req.ChannelID, req.From.ID)
		handlers.RespondTooManyRequests(w, msgTooManyRequests)
		return
	}

	// Токен пользователя для API автомойки необязателен
	token, _ := middleware.BearerToken(r)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, handleTurn.ErrInvalidInput):
			h.logger.Warn("POST /messages - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /messages - Failed to handle turn: conversation=%s, error=%v", req.ConversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /messages - Turn handled: conversation=%s, activities=%d, outcome=%s",
		req.ConversationID, len(result.Activities), result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
