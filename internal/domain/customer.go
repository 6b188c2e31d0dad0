package domain

import (
	"regexp"
	"strings"
)

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// Moroccan mobile/landline numbers: +212 or 0 prefix, then 9 digits
// starting with 5, 6 or 7.
var moroccanPhoneRe = regexp.MustCompile(`^(\+212|0)([5-7]\d{8})$`)

type CustomerInfo struct {
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Notes          string         `json:"notes,omitempty"`
}

// Validate reports the first failing field. Address is only required for
// delivery orders; pickup orders may leave it empty.
func (c CustomerInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if !ValidPhone(c.Phone) {
		return &ValidationError{Field: "phone", Reason: "invalid Moroccan phone number"}
	}
	switch c.DeliveryMethod {
	case DeliveryMethodDelivery:
		if strings.TrimSpace(c.Address) == "" {
			return &ValidationError{Field: "address", Reason: "address is required for delivery"}
		}
	case DeliveryMethodPickup:
	default:
		return &ValidationError{Field: "delivery_method", Reason: "must be delivery or pickup"}
	}
	return nil
}

func ValidPhone(phone string) bool {
	return moroccanPhoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// NormalizePhone rewrites a local number to its +212 international form.
// Already-prefixed numbers pass through unchanged.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	if strings.HasPrefix(cleaned, "+212") {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "0") {
		return "+212" + cleaned[1:]
	}
	return "+212" + cleaned
}
