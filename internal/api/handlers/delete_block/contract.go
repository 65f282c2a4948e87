package delete_block

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/service/blocks/models"
)

type BlockService interface {
	Unblock(ctx context.Context, req *models.ScopeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
