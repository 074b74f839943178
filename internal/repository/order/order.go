package order

import (
	"context"
	"fmt"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

// Repository хранит заказы в памяти процесса, отдельно для каждой сессии.
// Внутри сессии заказы лежат от новых к старым.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string][]*OrderRecord
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string][]*OrderRecord),
	}
}

func (r *Repository) Create(ctx context.Context, sessionID string, o entities.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("order repository create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.sessions[sessionID]
	if indexOf(records, o.ID) >= 0 {
		return order.ErrConflict
	}

	// новые заказы в начало
	updated := make([]*OrderRecord, 0, len(records)+1)
	updated = append(updated, FromDomain(&o))
	updated = append(updated, records...)
	r.sessions[sessionID] = updated

	return nil
}

func (r *Repository) Delete(ctx context.Context, sessionID string, orderID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("order repository delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.sessions[sessionID]
	i := indexOf(records, orderID)
	if i < 0 {
		return order.ErrOrderNotFound
	}

	updated := make([]*OrderRecord, 0, len(records)-1)
	updated = append(updated, records[:i]...)
	updated = append(updated, records[i+1:]...)
	r.sessions[sessionID] = updated

	return nil
}

// DeleteAll удаляет все заказы сессии и возвращает их количество.
func (r *Repository) DeleteAll(ctx context.Context, sessionID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("order repository delete all: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := int64(len(r.sessions[sessionID]))
	delete(r.sessions, sessionID)

	return removed, nil
}

func (r *Repository) GetByID(ctx context.Context, sessionID string, orderID string) (*entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("order repository get: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.sessions[sessionID]
	i := indexOf(records, orderID)
	if i < 0 {
		return nil, order.ErrOrderNotFound
	}

	return ToDomain(records[i]), nil
}

func (r *Repository) GetAll(ctx context.Context, sessionID string) ([]entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("order repository get all: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.sessions[sessionID]
	orders := make([]entities.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, *ToDomain(record))
	}

	return orders, nil
}

func indexOf(records []*OrderRecord, orderID string) int {
	for i, record := range records {
		if record.ID == orderID {
			return i
		}
	}
	return -1
}
