package order

import "time"

// OrderRecord - хранимая копия заказа. Указатели не разделяются с вызывающим
// кодом, иначе изменения снаружи протекали бы в хранилище.
type OrderRecord struct {
	ID              string
	Name            string
	Phone           string
	ClientOrderID   string
	OrderValue      string
	PaymentMethod   string
	CustomerAddress *string
	Lat             *float64
	Lng             *float64
	Status          string
	Timestamp       time.Time
}
