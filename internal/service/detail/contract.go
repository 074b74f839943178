//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=detail_test
package detail

import (
	"context"

	"dispatch/internal/entities"
)

type Selector interface {
	Selected(ctx context.Context, sessionID string) (*entities.Order, error)
}
