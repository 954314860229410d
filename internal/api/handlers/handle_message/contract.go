package handle_message

import (
	"context"

	handleTurn "github.com/m04kA/SMC-CarWashBot/internal/usecase/handle_turn"
)

type HandleTurnUseCase interface {
	Execute(ctx context.Context, req *handleTurn.Request) (*handleTurn.Response, error)
}

type RateLimiter interface {
	Allow(key string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
