package converters

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/panel"
)

func ToOrderDTO(o entities.Order) dto.Order {
	orderDTO := dto.Order{
		Id:            o.ID,
		Name:          o.Name,
		Phone:         o.Phone,
		ClientOrderId: o.ClientOrderID,
		OrderValue:    o.OrderValue,
		PaymentMethod: dto.PaymentMethod(o.PaymentMethod.String()),
		Status:        dto.OrderStatus(o.Status.String()),
		Timestamp:     o.Timestamp,
	}

	if o.CustomerAddress != nil {
		address := *o.CustomerAddress
		orderDTO.CustomerAddress = &address
	}
	if o.Location != nil {
		orderDTO.Location = &dto.Location{Lat: o.Location.Lat, Lng: o.Location.Lng}
	}

	return orderDTO
}

func ToOrderDTOs(orders []entities.Order) []dto.Order {
	orderDTOs := make([]dto.Order, len(orders))
	for i, o := range orders {
		orderDTOs[i] = ToOrderDTO(o)
	}
	return orderDTOs
}

func ToBucketDTO(b entities.Bucket) dto.Bucket {
	bucketDTO := dto.Bucket{
		Name:     b.Name,
		Count:    b.Count,
		Expanded: b.Expanded,
		Empty:    b.Empty,
		Orders:   ToOrderDTOs(b.Orders),
	}

	if b.Empty {
		message := panel.EmptyBucketMessage
		bucketDTO.EmptyMessage = &message
	}

	return bucketDTO
}

func FromOrderCreateDTO(d dto.OrderCreate) entities.OrderDraft {
	draft := entities.OrderDraft{
		ID:              d.Id,
		Name:            d.Name,
		Phone:           d.Phone,
		ClientOrderID:   d.ClientOrderId,
		OrderValue:      d.OrderValue,
		CustomerAddress: d.CustomerAddress,
	}

	if d.PaymentMethod != nil {
		method := entities.PaymentMethod(*d.PaymentMethod)
		draft.PaymentMethod = &method
	}
	if d.Location != nil {
		draft.Location = &entities.Location{Lat: d.Location.Lat, Lng: d.Location.Lng}
	}

	return draft
}

func ToLocationDTO(l entities.Location) dto.Location {
	return dto.Location{Lat: l.Lat, Lng: l.Lng}
}

func ToMapMarkerDTO(m entities.MapMarker) dto.MapMarker {
	markerDTO := dto.MapMarker{
		Id:       m.ID,
		Label:    m.Label,
		Kind:     string(m.Kind),
		Position: ToLocationDTO(m.Position),
		Color:    m.Color,
	}

	if m.Status != "" {
		status := dto.OrderStatus(m.Status.String())
		markerDTO.Status = &status
	}

	return markerDTO
}

func ToMapSceneDTO(s entities.MapScene) dto.MapScene {
	markers := make([]dto.MapMarker, len(s.Markers))
	for i, m := range s.Markers {
		markers[i] = ToMapMarkerDTO(m)
	}

	return dto.MapScene{
		Center:  ToLocationDTO(s.Center),
		Hub:     ToMapMarkerDTO(s.Hub),
		Markers: markers,
	}
}

func ToOrderDetailDTO(d entities.OrderDetail) dto.OrderDetail {
	steps := make([]dto.StatusStep, len(d.Steps))
	for i, step := range d.Steps {
		steps[i] = dto.StatusStep{Name: step.Name, Completed: step.Completed}
	}

	return dto.OrderDetail{
		Order:    ToOrderDTO(d.Order),
		Headline: d.Headline,
		Steps:    steps,
	}
}

func ToNotificationDTO(n entities.Notification) dto.Notification {
	return dto.Notification{
		Id:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		ExpiresAt:   n.ExpiresAt,
	}
}

func ToSessionDTO(s entities.Session) dto.Session {
	return dto.Session{
		Id:         s.ID,
		Email:      s.Email,
		SignedInAt: s.SignedInAt,
		LastSeenAt: s.LastSeenAt,
	}
}
