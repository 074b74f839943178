package mapview

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

const hubLabel = "Dispatch Hub"

type Config struct {
	Center entities.Location
	Hub    entities.Location
}

// Service готовит данные для карты: центр, хаб и по маркеру на каждый заказ
// с координатами. Отрисовка на стороне клиента.
type Service struct {
	orders OrderLister
	cfg    Config
}

func New(orders OrderLister, cfg Config) *Service {
	return &Service{
		orders: orders,
		cfg:    cfg,
	}
}

func (s *Service) Scene(ctx context.Context, sessionID string) (*entities.MapScene, error) {
	orders, err := s.orders.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("map scene: %w", err)
	}

	markers := make([]entities.MapMarker, 0, len(orders))
	for _, o := range orders {
		if o.Location == nil {
			continue
		}
		markers = append(markers, entities.MapMarker{
			ID:       o.ID,
			Label:    o.Name,
			Kind:     entities.MarkerOrder,
			Position: *o.Location,
			Color:    StatusColor(o.Status),
			Status:   o.Status,
		})
	}

	return &entities.MapScene{
		Center: s.cfg.Center,
		Hub: entities.MapMarker{
			ID:       "hub",
			Label:    hubLabel,
			Kind:     entities.MarkerHub,
			Position: s.cfg.Hub,
			Color:    HubColor,
		},
		Markers: markers,
	}, nil
}
