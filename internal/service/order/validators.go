package order

import (
	"strings"

	"dispatch/internal/entities"
)

func isNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidPaymentMethod(method entities.PaymentMethod) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentSpanMachine, entities.PaymentPaid:
		return true
	default:
		return false
	}
}

// id адресуется через /order/{id}: без "/" и без пробелов по краям.
func isValidOrderID(id string) bool {
	return isNotBlank(id) && id == strings.TrimSpace(id) && !strings.Contains(id, "/")
}

func isValidLocation(location entities.Location) bool {
	return location.Lat >= -90 && location.Lat <= 90 &&
		location.Lng >= -180 && location.Lng <= 180
}

func validateDraft(draft entities.OrderDraft) error {
	if draft.Name == nil || draft.Phone == nil || draft.PaymentMethod == nil {
		return ErrMissingRequiredFields
	}

	if !isNotBlank(*draft.Name) {
		return ErrInvalidName
	}
	if !isNotBlank(*draft.Phone) {
		return ErrInvalidPhone
	}
	if !isValidPaymentMethod(*draft.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if *draft.PaymentMethod == entities.PaymentCash &&
		(draft.CustomerAddress == nil || !isNotBlank(*draft.CustomerAddress)) {
		return ErrMissingCustomerAddress
	}
	if draft.ID != nil && !isValidOrderID(*draft.ID) {
		return ErrInvalidOrderID
	}
	if draft.Location != nil && !isValidLocation(*draft.Location) {
		return ErrInvalidLocation
	}
	return nil
}
