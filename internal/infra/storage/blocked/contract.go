package blocked

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
)

// Store key-value хранилище, в котором лежит список блокировок
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn kv.UpdateFunc) error
}
