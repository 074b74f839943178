package mapview

import "dispatch/internal/entities"

const (
	HubColor     = "#dc2626"
	unknownColor = "#6b7280"
)

var statusColors = map[entities.OrderStatusType]string{
	entities.OrderPending:            "#eab308",
	entities.OrderAutoDispatchFailed: "#ef4444",
	entities.OrderAccepted:           "#3b82f6",
	entities.OrderDriverAtPickup:     "#a855f7",
	entities.OrderPicked:             "#f97316",
	entities.OrderDriverAtDropoff:    "#6366f1",
	entities.OrderCompleted:          "#22c55e",
}

func StatusColor(status entities.OrderStatusType) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return unknownColor
}
