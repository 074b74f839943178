package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/internal/service/panel"
	"dispatch/internal/service/session"
)

// Repository хранит сессии панели диспетчера и их состояние UI в памяти.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]*sessionRecord),
	}
}

// Create регистрирует сессию с состоянием панели по умолчанию.
func (r *Repository) Create(ctx context.Context, s entities.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session repository create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return session.ErrSessionExists
	}

	r.sessions[s.ID] = &sessionRecord{
		ID:         s.ID,
		Email:      s.Email,
		SignedInAt: s.SignedInAt,
		LastSeenAt: s.LastSeenAt,
		Panel:      entities.DefaultPanelState(),
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, sessionID string) (*entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("session repository get: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return toDomain(record), nil
}

// Touch сдвигает время последней активности сессии.
func (r *Repository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session repository touch: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return session.ErrSessionNotFound
	}
	if at.After(record.LastSeenAt) {
		record.LastSeenAt = at
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session repository delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return session.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// GetIdle возвращает сессии, не активные с момента before, старые первыми.
func (r *Repository) GetIdle(ctx context.Context, before time.Time) ([]entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("session repository get idle: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idle := make([]entities.Session, 0)
	for _, record := range r.sessions {
		if record.LastSeenAt.Before(before) {
			idle = append(idle, *toDomain(record))
		}
	}

	sort.Slice(idle, func(i, j int) bool {
		return idle[i].LastSeenAt.Before(idle[j].LastSeenAt)
	})
	return idle, nil
}

// CheckSession возвращает order.ErrSessionNotFound для завершённой сессии.
func (r *Repository) CheckSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session repository check: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return order.ErrSessionNotFound
	}
	return nil
}

func (r *Repository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *Repository) GetPanelState(ctx context.Context, sessionID string) (*entities.PanelState, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("session repository get panel state: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return nil, panel.ErrSessionNotFound
	}

	state := clonePanelState(record.Panel)
	return &state, nil
}

func (r *Repository) SavePanelState(ctx context.Context, sessionID string, state entities.PanelState) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session repository save panel state: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.sessions[sessionID]
	if !ok {
		return panel.ErrSessionNotFound
	}

	record.Panel = clonePanelState(state)
	return nil
}
