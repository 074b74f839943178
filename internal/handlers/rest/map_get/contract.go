//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=map_get_test
package map_get

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
	Scene(ctx context.Context, sessionID string) (*entities.MapScene, error)
}
