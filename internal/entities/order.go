package entities

import "time"

type Order struct {
	ID              string
	Name            string
	Phone           string
	ClientOrderID   string
	OrderValue      string
	PaymentMethod   PaymentMethod
	CustomerAddress *string // только для PaymentCash
	Location        *Location
	Status          OrderStatusType
	Timestamp       time.Time
}

// OrderDraft - поля формы создания заказа до присвоения id, статуса и времени.
// ID заполняется только если оператор ввёл его вручную.
type OrderDraft struct {
	ID              *string
	Name            *string
	Phone           *string
	ClientOrderID   *string
	OrderValue      *string
	PaymentMethod   *PaymentMethod
	CustomerAddress *string
	Location        *Location
}

type Location struct {
	Lat float64
	Lng float64
}

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "Cash"
	PaymentSpanMachine PaymentMethod = "Span Machine"
	PaymentPaid        PaymentMethod = "Paid"
)

func (p PaymentMethod) String() string {
	return string(p)
}

type OrderStatusType string

const (
	OrderPending            OrderStatusType = "Pending"
	OrderAutoDispatchFailed OrderStatusType = "Auto Dispatch Failed"
	OrderAccepted           OrderStatusType = "Accepted"
	OrderDriverAtPickup     OrderStatusType = "Driver at Pickup"
	OrderPicked             OrderStatusType = "Picked"
	OrderDriverAtDropoff    OrderStatusType = "Driver at Dropoff"
	OrderCompleted          OrderStatusType = "Completed"
)

const DefaultOrderStatus = OrderPending

// OrderStatuses перечисляет статусы в порядке жизненного цикла доставки.
var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderAutoDispatchFailed,
	OrderAccepted,
	OrderDriverAtPickup,
	OrderPicked,
	OrderDriverAtDropoff,
	OrderCompleted,
}

func (s OrderStatusType) String() string {
	return string(s)
}
