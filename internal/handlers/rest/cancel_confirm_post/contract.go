//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cancel_confirm_post_test
package cancel_confirm_post

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
	ConfirmCancel(ctx context.Context, sessionID string, orderID string) error
}
