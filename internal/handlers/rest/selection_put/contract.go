//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_put_test
package selection_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Select(ctx context.Context, sessionID string, orderID string) (*entities.Order, error)
}
