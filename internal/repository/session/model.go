package session

import (
	"time"

	"dispatch/internal/entities"
)

type sessionRecord struct {
	ID         string
	Email      string
	SignedInAt time.Time
	LastSeenAt time.Time
	Panel      entities.PanelState
}

func toDomain(r *sessionRecord) *entities.Session {
	return &entities.Session{
		ID:         r.ID,
		Email:      r.Email,
		SignedInAt: r.SignedInAt,
		LastSeenAt: r.LastSeenAt,
	}
}

func clonePanelState(state entities.PanelState) entities.PanelState {
	cloned := entities.PanelState{
		Expanded: make(map[string]bool, len(state.Expanded)),
	}
	for name, expanded := range state.Expanded {
		cloned.Expanded[name] = expanded
	}
	if state.SelectedOrderID != nil {
		id := *state.SelectedOrderID
		cloned.SelectedOrderID = &id
	}
	if state.PendingCancelID != nil {
		id := *state.PendingCancelID
		cloned.PendingCancelID = &id
	}
	return cloned
}
