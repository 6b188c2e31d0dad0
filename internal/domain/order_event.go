package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     int64     `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	TotalPrice  float64   `json:"totalPrice"`
	ItemCount   int       `json:"itemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
