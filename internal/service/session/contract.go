//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, session entities.Session) error
	GetByID(ctx context.Context, sessionID string) (*entities.Session, error)
	Touch(ctx context.Context, sessionID string, at time.Time) error
	Delete(ctx context.Context, sessionID string) error
	GetIdle(ctx context.Context, before time.Time) ([]entities.Session, error)
}

type TokenIssuer interface {
	Generate(sessionID string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (string, error)
}

type OrderStore interface {
	DiscardSession(ctx context.Context, sessionID string) (int64, error)
}

type Notifier interface {
	DropSession(sessionID string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
