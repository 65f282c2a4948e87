package create_block

import (
	"context"

	"github.com/m04kA/Oasis-BookingService/internal/service/blocks/models"
)

type BlockService interface {
	Block(ctx context.Context, req *models.ScopeRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
