//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_delete_test
package notification_delete

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
	Dismiss(ctx context.Context, sessionID string, notificationID string) error
}
