package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/sessionctx"
)

const (
	createdTitle       = "Order Created Successfully"
	createdDescription = "New order created with ID: %s"
)

type Service struct {
	repository Repository
	idFactory  IDFactory
	notifier   Notifier
	retrier    Retrier
	sessions   SessionStore
	txManager  TxManager
}

func New(
	repository Repository,
	idFactory IDFactory,
	notifier Notifier,
	retrier Retrier,
	sessions SessionStore,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		idFactory:  idFactory,
		notifier:   notifier,
		retrier:    retrier,
		sessions:   sessions,
		txManager:  txManager,
	}
}

// CreateOrder валидирует черновик, присваивает id/статус/время и кладёт заказ
// в начало списка сессии. Сгенерированный id при коллизии перегенерируется,
// введённый вручную - нет.
func (s *Service) CreateOrder(ctx context.Context, sessionID string, draft entities.OrderDraft) (*entities.Order, error) {
	err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	order := newOrder(draft, time.Now().UTC())

	// под блокировкой сессии: заказ не переживёт завершение сессии
	ctx = sessionctx.WithSessionID(ctx, sessionID)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.sessions.CheckSession(ctx, sessionID)
		if err != nil {
			return err
		}

		if draft.ID != nil {
			order.ID = *draft.ID
			return s.repository.Create(ctx, sessionID, order)
		}
		return s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			order.ID = s.idFactory.Generate()
			return s.repository.Create(ctx, sessionID, order)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(order.PaymentMethod.String()).Inc()
	s.notifier.Notify(ctx, sessionID, createdTitle, fmt.Sprintf(createdDescription, order.ID))

	return &order, nil
}

// CancelOrder удаляет заказ из сессии. Статус при отмене не меняется:
// заказ просто исчезает из всех секций.
func (s *Service) CancelOrder(ctx context.Context, sessionID string, orderID string) error {
	if !isNotBlank(orderID) {
		return ErrInvalidOrderID
	}

	err := s.repository.Delete(ctx, sessionID, orderID)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	metrics.OrdersCancelledTotal.Inc()
	return nil
}

func (s *Service) GetOrder(ctx context.Context, sessionID string, orderID string) (*entities.Order, error) {
	if !isNotBlank(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, sessionID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListOrders возвращает заказы сессии, новые первыми.
func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// DiscardSession очищает хранилище заказов сессии.
func (s *Service) DiscardSession(ctx context.Context, sessionID string) (int64, error) {
	removed, err := s.repository.DeleteAll(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("discard session orders: %w", err)
	}
	return removed, nil
}

func newOrder(draft entities.OrderDraft, now time.Time) entities.Order {
	order := entities.Order{
		Name:          strings.TrimSpace(*draft.Name),
		Phone:         strings.TrimSpace(*draft.Phone),
		PaymentMethod: *draft.PaymentMethod,
		Status:        entities.DefaultOrderStatus,
		Timestamp:     now,
	}

	if draft.ClientOrderID != nil {
		order.ClientOrderID = *draft.ClientOrderID
	}
	if draft.OrderValue != nil {
		order.OrderValue = *draft.OrderValue
	}
	// адрес хранится только для оплаты наличными
	if order.PaymentMethod == entities.PaymentCash {
		address := strings.TrimSpace(*draft.CustomerAddress)
		order.CustomerAddress = &address
	}
	if draft.Location != nil {
		location := *draft.Location
		order.Location = &location
	}

	return order
}
