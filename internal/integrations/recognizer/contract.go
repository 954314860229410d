package recognizer

import (
	"context"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// Classifier распознаёт намерение и сущности в тексте
type Classifier interface {
	Classify(ctx context.Context, text string) (*domain.Recognition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
