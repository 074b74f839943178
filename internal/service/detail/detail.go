package detail

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

const Headline = "Pending Driver Acceptance"

// Шаги прогресса доставки. Пока заказы не покидают Pending, выполнен только
// первый шаг.
var progressSteps = []string{"Pending", "Picked Up", "In Transit", "Delivered"}

type Service struct {
	selector Selector
}

func New(selector Selector) *Service {
	return &Service{
		selector: selector,
	}
}

// Detail собирает карточку выбранного заказа. Без выбора возвращает
// panel.ErrNoSelection.
func (s *Service) Detail(ctx context.Context, sessionID string) (*entities.OrderDetail, error) {
	o, err := s.selector.Selected(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("order detail: %w", err)
	}

	return &entities.OrderDetail{
		Order:    *o,
		Headline: Headline,
		Steps:    Steps(),
	}, nil
}

func Steps() []entities.StatusStep {
	steps := make([]entities.StatusStep, 0, len(progressSteps))
	for i, name := range progressSteps {
		steps = append(steps, entities.StatusStep{
			Name:      name,
			Completed: i == 0,
		})
	}
	return steps
}
