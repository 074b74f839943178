package notification

import (
	"context"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"github.com/google/uuid"
)

const DefaultTTL = 5 * time.Second

type entry struct {
	notification entities.Notification
	timer        *time.Timer
}

// Service хранит всплывающие уведомления сессий. Каждое уведомление
// снимается само через ttl после показа.
type Service struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string][]*entry
}

func New(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		ttl:      ttl,
		sessions: make(map[string][]*entry),
	}
}

func (s *Service) Notify(_ context.Context, sessionID string, title string, description string) entities.Notification {
	now := time.Now().UTC()
	n := entities.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{notification: n}
	e.timer = time.AfterFunc(s.ttl, func() {
		s.remove(sessionID, n.ID)
	})
	s.sessions[sessionID] = append(s.sessions[sessionID], e)

	metrics.NotificationsShown.Inc()
	return n
}

// List возвращает активные уведомления сессии в порядке показа.
func (s *Service) List(_ context.Context, sessionID string) []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.sessions[sessionID]
	list := make([]entities.Notification, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.notification)
	}
	return list
}

// Dismiss снимает уведомление раньше срока.
func (s *Service) Dismiss(_ context.Context, sessionID string, notificationID string) error {
	e := s.remove(sessionID, notificationID)
	if e == nil {
		return ErrNotificationNotFound
	}

	e.timer.Stop()
	return nil
}

// DropSession снимает все уведомления сессии и останавливает их таймеры.
func (s *Service) DropSession(sessionID string) {
	s.mu.Lock()
	entries := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	for _, e := range entries {
		e.timer.Stop()
	}
}

func (s *Service) remove(sessionID string, notificationID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.sessions[sessionID]
	for i, e := range entries {
		if e.notification.ID != notificationID {
			continue
		}

		rest := append(entries[:i:i], entries[i+1:]...)
		if len(rest) == 0 {
			delete(s.sessions, sessionID)
		} else {
			s.sessions[sessionID] = rest
		}
		return e
	}
	return nil
}
