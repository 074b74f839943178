//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, sessionID string, order entities.Order) error
	Delete(ctx context.Context, sessionID string, orderID string) error
	DeleteAll(ctx context.Context, sessionID string) (int64, error)
	GetByID(ctx context.Context, sessionID string, orderID string) (*entities.Order, error)
	GetAll(ctx context.Context, sessionID string) ([]entities.Order, error)
}

type IDFactory interface {
	Generate() string
}

type Notifier interface {
	Notify(ctx context.Context, sessionID string, title string, description string) entities.Notification
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// SessionStore подтверждает, что сессия ещё не завершена.
type SessionStore interface {
	CheckSession(ctx context.Context, sessionID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
