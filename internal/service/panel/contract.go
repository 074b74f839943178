//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=panel_test
package panel

import (
	"context"

	"dispatch/internal/entities"
)

type OrderStore interface {
	ListOrders(ctx context.Context, sessionID string) ([]entities.Order, error)
	GetOrder(ctx context.Context, sessionID string, orderID string) (*entities.Order, error)
	CancelOrder(ctx context.Context, sessionID string, orderID string) error
}

type StateStore interface {
	GetPanelState(ctx context.Context, sessionID string) (*entities.PanelState, error)
	SavePanelState(ctx context.Context, sessionID string, state entities.PanelState) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
