package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the ordered lifecycle of an order. Cart is the mutable
// pre-checkout state; at most one Cart order exists per customer.
type OrderStatus string

const (
	OrderStatusCart       OrderStatus = "Cart"
	OrderStatusPlaced     OrderStatus = "Placed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, t := range []OrderStatus{
		OrderStatusCart,
		OrderStatusPlaced,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

type Order struct {
	OrderID     int64       `json:"order_id" db:"order_id"`
	CustomerID  int64       `json:"customer_id" db:"customer_id"`
	OrderDate   time.Time   `json:"order_date" db:"order_date"`
	Status      OrderStatus `json:"status" db:"status"`
	TotalAmount int64       `json:"total_amount" db:"total_amount"` // cents

	// Populated on demand by the service layer, never by a repository.
	Customer *Customer   `json:"customer,omitempty"`
	Items    []OrderItem `json:"items,omitempty"`
}

// OrderItem is a line in an order. PriceAtOrder is a snapshot taken when
// the item was added, so later product price changes do not rewrite
// historical orders.
type OrderItem struct {
	OrderItemID  int64 `json:"order_item_id" db:"order_item_id"`
	OrderID      int64 `json:"order_id" db:"order_id"`
	ProductID    int64 `json:"product_id" db:"product_id"`
	Quantity     int64 `json:"quantity" db:"quantity"`
	PriceAtOrder int64 `json:"price_at_order" db:"price_at_order"` // cents

	Product *Product `json:"product,omitempty"`
}

func (i OrderItem) Subtotal() int64 {
	return i.PriceAtOrder * i.Quantity
}
