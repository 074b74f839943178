package session_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ExpireIdle(ctx context.Context) (int, error)
}

// SessionCleanup периодически завершает простаивающие сессии вместе с их
// заказами и уведомлениями.
type SessionCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	expired, err := s.service.ExpireIdle(ctxWithTimeout)

	if expired > 0 {
		s.log.With(
			logger.NewField("expired_sessions", expired),
		).Info("session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
