package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/infra/rabbitmq"
	"github.com/bilaLBOOS8/foodieMeknes/internal/pricing"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

const paymentMethodCash = "cash"

// SubmittedItem is one cart line as the client sends it. The unit price is
// only trusted when the product can no longer be resolved.
type SubmittedItem struct {
	ProductID      int64
	Quantity       int
	Customizations map[string]string
	UnitPrice      float64
}

type OrderService struct {
	store     repository.Store
	publisher rabbitmq.PublisherInterface
}

func NewOrderService(store repository.Store, pub rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{store: store, publisher: pub}
}

// Create turns a submitted cart into a persisted order. Every line is
// re-priced server-side from the catalog; the client-declared total is never
// trusted. A product that has vanished from the catalog becomes a flagged
// placeholder line instead of failing the whole order.
func (u *OrderService) Create(ctx context.Context, info domain.CustomerInfo, items []SubmittedItem, clientTotal float64) (*domain.Order, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	info.Phone = domain.NormalizePhone(info.Phone)
	if len(items) == 0 {
		return nil, &domain.ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}

	lines := make([]domain.CartItem, 0, len(items))
	var total float64
	for _, item := range items {
		line := u.priceLine(item)
		total += line.Subtotal
		lines = append(lines, line)
	}

	if clientTotal != total {
		log.Printf("order: client total %.2f differs from server total %.2f", clientTotal, total)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber:    newOrderNumber(now),
		CustomerInfo:   info,
		Items:          lines,
		TotalPrice:     total,
		Status:         domain.StatusPending,
		PaymentMethod:  paymentMethodCash,
		PaymentDetails: map[string]any{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.store.CreateOrder(order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if u.publisher != nil {
		go u.publishOrderCreated(context.Background(), created)
	}

	return created, nil
}

func (u *OrderService) priceLine(item SubmittedItem) domain.CartItem {
	extras := pricing.PriceExtras(item.Customizations)
	customizations := item.Customizations
	if customizations == nil {
		customizations = map[string]string{}
	}

	product, err := u.store.FindProductByID(item.ProductID)
	if err != nil {
		log.Printf("order: resolve product %d: %v", item.ProductID, err)
	}
	if product == nil {
		// a catalog edit raced the submission; keep the order but flag
		// the line for manual review
		return domain.CartItem{
			Product:        placeholderProduct(item.ProductID, item.UnitPrice),
			Quantity:       item.Quantity,
			Customizations: customizations,
			UnitPrice:      item.UnitPrice,
			Subtotal:       (item.UnitPrice + extras) * float64(item.Quantity),
			Placeholder:    true,
		}
	}

	return domain.CartItem{
		Product:        *product,
		Quantity:       item.Quantity,
		Customizations: customizations,
		UnitPrice:      product.Price,
		Subtotal:       (product.Price + extras) * float64(item.Quantity),
	}
}

func placeholderProduct(id int64, claimedPrice float64) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:          id,
		Name:        "Unknown Product",
		Price:       claimedPrice,
		Ingredients: []string{},
		Options:     []domain.ProductOption{},
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// newOrderNumber builds the human-facing identifier: FM plus the upper-cased
// base36 millisecond timestamp. Collision-resistant in practice, but not an
// idempotency key.
func newOrderNumber(now time.Time) string {
	return "FM" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

func (u *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	var count int
	for _, line := range order.Items {
		count += line.Quantity
	}
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TotalPrice:  order.TotalPrice,
		ItemCount:   count,
		CreatedAt:   order.CreatedAt,
	}
	if err := u.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created: %v", err)
	}
}

// List returns all orders newest first. A backend read failure degrades to
// an empty list so the admin page still renders.
func (u *OrderService) List(ctx context.Context) []domain.Order {
	orders, err := u.store.ListOrders()
	if err != nil {
		log.Printf("order: list: %v", err)
		return []domain.Order{}
	}
	if orders == nil {
		return []domain.Order{}
	}
	return orders
}

func (u *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := u.store.FindOrderByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus applies one lifecycle transition. The order is left untouched
// on an illegal move.
func (u *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}
	order, err := u.store.FindOrderByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if !domain.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}
	return u.store.UpdateOrderStatus(id, status)
}
