//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bucket_toggle_post_test
package bucket_toggle_post

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
	ToggleBucket(ctx context.Context, sessionID string, bucket string) (bool, error)
}
