package http

import (
	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/services"
)

type CreateOrderRequest struct {
	CustomerInfo domain.CustomerInfo `json:"customer_info" binding:"required"`
	Items        []OrderItemRequest  `json:"items" binding:"required"`
	TotalPrice   float64             `json:"total_price"`
}

type OrderItemRequest struct {
	ProductID      int64             `json:"product_id" binding:"required"`
	Quantity       int               `json:"quantity" binding:"required,min=1"`
	Customizations map[string]string `json:"customizations"`
	UnitPrice      float64           `json:"unit_price"`
}

func (r CreateOrderRequest) toSubmittedItems() []services.SubmittedItem {
	items := make([]services.SubmittedItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, services.SubmittedItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			Customizations: it.Customizations,
			UnitPrice:      it.UnitPrice,
		})
	}
	return items
}

type UpdateStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  *domain.AdminUser `json:"user"`
}
