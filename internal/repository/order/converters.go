package order

import "dispatch/internal/entities"

func ToDomain(r *OrderRecord) *entities.Order {
	if r == nil {
		return nil
	}
	order := &entities.Order{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		ClientOrderID: r.ClientOrderID,
		OrderValue:    r.OrderValue,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Status:        entities.OrderStatusType(r.Status),
		Timestamp:     r.Timestamp,
	}

	if r.CustomerAddress != nil {
		address := *r.CustomerAddress
		order.CustomerAddress = &address
	}
	if r.Lat != nil && r.Lng != nil {
		order.Location = &entities.Location{Lat: *r.Lat, Lng: *r.Lng}
	}

	return order
}

func FromDomain(o *entities.Order) *OrderRecord {
	if o == nil {
		return nil
	}
	record := &OrderRecord{
		ID:            o.ID,
		Name:          o.Name,
		Phone:         o.Phone,
		ClientOrderID: o.ClientOrderID,
		OrderValue:    o.OrderValue,
		PaymentMethod: o.PaymentMethod.String(),
		Status:        o.Status.String(),
		Timestamp:     o.Timestamp,
	}

	if o.CustomerAddress != nil {
		address := *o.CustomerAddress
		record.CustomerAddress = &address
	}
	if o.Location != nil {
		lat, lng := o.Location.Lat, o.Location.Lng
		record.Lat = &lat
		record.Lng = &lng
	}

	return record
}
