package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/sessionctx"
	"github.com/google/uuid"
)

// Service ведёт сессии панели диспетчера. Учётные данные не проверяются:
// любой вход создаёт новую пустую сессию.
type Service struct {
	repository Repository
	tokens     TokenIssuer
	orders     OrderStore
	notifier   Notifier
	txManager  TxManager
	cfg        Config
}

func New(
	repository Repository,
	tokens TokenIssuer,
	orders OrderStore,
	notifier Notifier,
	txManager TxManager,
	cfg Config,
) *Service {
	return &Service{
		repository: repository,
		tokens:     tokens,
		orders:     orders,
		notifier:   notifier,
		txManager:  txManager,
		cfg:        cfg,
	}
}

func (s *Service) SignIn(ctx context.Context, credentials entities.Credentials) (*entities.SignedIn, error) {
	now := time.Now().UTC()
	session := entities.Session{
		ID:         uuid.NewString(),
		Email:      strings.TrimSpace(credentials.Email),
		SignedInAt: now,
		LastSeenAt: now,
	}

	err := s.repository.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	token, expiresAt, err := s.tokens.Generate(session.ID, s.cfg.TokenTTL)
	if err != nil {
		// сессия без токена недостижима, убираем её сразу
		_ = s.repository.Delete(ctx, session.ID)
		return nil, fmt.Errorf("sign in: %w", err)
	}

	metrics.ActiveSessions.Inc()
	return &entities.SignedIn{
		Session:   session,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate проверяет токен и продлевает активность сессии. Любая причина
// отказа сводится к ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*entities.Session, error) {
	sessionID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	session, err := s.repository.GetByID(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	now := time.Now().UTC()
	if s.cfg.IdleTTL > 0 && now.Sub(session.LastSeenAt) > s.cfg.IdleTTL {
		err = s.discard(ctx, sessionID)
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("authenticate: %w", err)
		}
		return nil, fmt.Errorf("%w: session idle", ErrUnauthorized)
	}

	err = s.repository.Touch(ctx, sessionID, now)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	session.LastSeenAt = now
	return session, nil
}

// LogOut удаляет заказы, уведомления и состояние панели сессии.
func (s *Service) LogOut(ctx context.Context, sessionID string) error {
	err := s.discard(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("log out: %w", err)
	}
	return nil
}

// ExpireIdle завершает сессии, неактивные дольше IdleTTL, и возвращает их число.
func (s *Service) ExpireIdle(ctx context.Context) (int, error) {
	if s.cfg.IdleTTL <= 0 {
		return 0, nil
	}

	idle, err := s.repository.GetIdle(ctx, time.Now().UTC().Add(-s.cfg.IdleTTL))
	if err != nil {
		return 0, fmt.Errorf("get idle sessions: %w", err)
	}

	expired := 0
	for _, session := range idle {
		err = s.discard(ctx, session.ID)
		if errors.Is(err, ErrSessionNotFound) {
			// сессия завершилась параллельно
			continue
		}
		if err != nil {
			return expired, fmt.Errorf("expire session %s: %w", session.ID, err)
		}
		expired++
	}

	return expired, nil
}

// discard сначала удаляет саму сессию, затем её данные. Выполняется под той же
// блокировкой сессии, что и создание заказа.
func (s *Service) discard(ctx context.Context, sessionID string) error {
	ctx = sessionctx.WithSessionID(ctx, sessionID)

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.Delete(ctx, sessionID)
		if err != nil {
			return err
		}
		metrics.ActiveSessions.Dec()

		_, err = s.orders.DiscardSession(ctx, sessionID)
		if err != nil {
			return err
		}

		s.notifier.DropSession(sessionID)
		return nil
	})
}
