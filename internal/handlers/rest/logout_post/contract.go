//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=logout_post_test
package logout_post

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
	LogOut(ctx context.Context, sessionID string) error
}
