package conversation

import "context"

// Repository байтовое хранилище состояния (memory, redis или postgres)
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
