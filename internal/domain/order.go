package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// nextStatus encodes the single forward chain staff walk an order through.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to
// another: strictly one step forward along the chain, or to cancelled from
// any non-terminal state. Terminal states accept no further transitions.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return nextStatus[from] == to
}

// Order is immutable once created except for Status and UpdatedAt. Items are
// full snapshots priced server-side at submission time.
type Order struct {
	ID             int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber    string         `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerInfo   CustomerInfo   `json:"customer_info" gorm:"serializer:json"`
	Items          []CartItem     `json:"items" gorm:"serializer:json"`
	TotalPrice     float64        `json:"total_price" gorm:"not null"`
	Status         OrderStatus    `json:"status" gorm:"type:varchar(16);default:'pending';index"`
	PaymentMethod  string         `json:"payment_method"`
	PaymentDetails map[string]any `json:"payment_details" gorm:"serializer:json"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
