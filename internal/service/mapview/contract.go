//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mapview_test
package mapview

import (
	"context"

	"dispatch/internal/entities"
)

type OrderLister interface {
	ListOrders(ctx context.Context, sessionID string) ([]entities.Order, error)
}
