//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_delete_test
package selection_delete

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ClearSelection(ctx context.Context, sessionID string) error
}
