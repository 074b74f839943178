package panel

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/sessionctx"
	"dispatch/internal/service/order"
)

// Service управляет панелью заказов: секциями по статусам, поиском,
// выбором заказа для детального просмотра и отменой с подтверждением.
type Service struct {
	orders    OrderStore
	state     StateStore
	txManager TxManager
}

func New(orders OrderStore, state StateStore, txManager TxManager) *Service {
	return &Service{
		orders:    orders,
		state:     state,
		txManager: txManager,
	}
}

func (s *Service) Buckets(ctx context.Context, sessionID string, search string) ([]entities.Bucket, error) {
	state, err := s.state.GetPanelState(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get panel state: %w", err)
	}

	orders, err := s.orders.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return buildBuckets(orders, *state, search), nil
}

// ToggleBucket переключает раскрытие секции и возвращает новое состояние.
func (s *Service) ToggleBucket(ctx context.Context, sessionID string, bucket string) (bool, error) {
	if !isKnownBucket(bucket) {
		return false, ErrUnknownBucket
	}

	var expanded bool
	err := s.update(ctx, sessionID, func(_ context.Context, state *entities.PanelState) error {
		expanded = !state.Expanded[bucket]
		state.Expanded[bucket] = expanded
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle bucket: %w", err)
	}

	return expanded, nil
}

// Select открывает детальный просмотр заказа. Выбранным может быть только
// один заказ.
func (s *Service) Select(ctx context.Context, sessionID string, orderID string) (*entities.Order, error) {
	var selected *entities.Order
	err := s.update(ctx, sessionID, func(ctx context.Context, state *entities.PanelState) error {
		o, err := s.orders.GetOrder(ctx, sessionID, orderID)
		if err != nil {
			return err
		}

		selected = o
		state.SelectedOrderID = &o.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	return selected, nil
}

func (s *Service) ClearSelection(ctx context.Context, sessionID string) error {
	err := s.update(ctx, sessionID, func(_ context.Context, state *entities.PanelState) error {
		state.SelectedOrderID = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}

// Selected возвращает выбранный заказ. Если заказ уже удалён, выбор
// сбрасывается и возвращается ErrNoSelection.
func (s *Service) Selected(ctx context.Context, sessionID string) (*entities.Order, error) {
	var selected *entities.Order
	err := s.update(ctx, sessionID, func(ctx context.Context, state *entities.PanelState) error {
		if state.SelectedOrderID == nil {
			return ErrNoSelection
		}

		o, err := s.orders.GetOrder(ctx, sessionID, *state.SelectedOrderID)
		if errors.Is(err, order.ErrOrderNotFound) {
			state.SelectedOrderID = nil
			return nil
		}
		if err != nil {
			return err
		}

		selected = o
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get selected order: %w", err)
	}
	if selected == nil {
		return nil, ErrNoSelection
	}

	return selected, nil
}

// RequestCancel запоминает, что для заказа открыт диалог подтверждения отмены.
func (s *Service) RequestCancel(ctx context.Context, sessionID string, orderID string) error {
	err := s.update(ctx, sessionID, func(ctx context.Context, state *entities.PanelState) error {
		o, err := s.orders.GetOrder(ctx, sessionID, orderID)
		if err != nil {
			return err
		}

		state.PendingCancelID = &o.ID
		return nil
	})
	if err != nil {
		return fmt.Errorf("request cancel: %w", err)
	}
	return nil
}

// ConfirmCancel удаляет заказ, только если отмена была запрошена именно для него.
func (s *Service) ConfirmCancel(ctx context.Context, sessionID string, orderID string) error {
	err := s.update(ctx, sessionID, func(ctx context.Context, state *entities.PanelState) error {
		if state.PendingCancelID == nil || *state.PendingCancelID != orderID {
			return ErrCancelNotRequested
		}

		err := s.orders.CancelOrder(ctx, sessionID, orderID)
		if err != nil {
			return err
		}

		state.PendingCancelID = nil
		if state.SelectedOrderID != nil && *state.SelectedOrderID == orderID {
			state.SelectedOrderID = nil
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("confirm cancel: %w", err)
	}
	return nil
}

// DismissCancel закрывает диалог подтверждения без удаления заказа.
func (s *Service) DismissCancel(ctx context.Context, sessionID string, orderID string) error {
	err := s.update(ctx, sessionID, func(_ context.Context, state *entities.PanelState) error {
		if state.PendingCancelID == nil || *state.PendingCancelID != orderID {
			return ErrCancelNotRequested
		}

		state.PendingCancelID = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("dismiss cancel: %w", err)
	}
	return nil
}

// update читает состояние панели, применяет fn и сохраняет результат под
// блокировкой сессии. При ошибке fn состояние не сохраняется.
func (s *Service) update(ctx context.Context, sessionID string, fn func(ctx context.Context, state *entities.PanelState) error) error {
	ctx = sessionctx.WithSessionID(ctx, sessionID)

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		state, err := s.state.GetPanelState(ctx, sessionID)
		if err != nil {
			return err
		}

		err = fn(ctx, state)
		if err != nil {
			return err
		}

		return s.state.SavePanelState(ctx, sessionID, *state)
	})
}
