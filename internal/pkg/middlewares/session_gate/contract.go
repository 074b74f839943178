//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_gate_test
package session_gate

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Session, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
