package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// OrderStatuses is the workflow ladder in order.
var OrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

// Next returns the single legal forward transition.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	default:
		return "", false
	}
}

func (s OrderStatus) Terminal() bool { return s == StatusDelivered }

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Rank is the position on the ladder, -1 for unknown statuses.
func (s OrderStatus) Rank() int {
	for i, st := range OrderStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

type OrderItem struct {
	ID       int64   `json:"id,omitempty"`
	OrderID  int64   `json:"order_id,omitempty"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID              int64        `json:"id"`
	CustomerName    string       `json:"customer_name"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	Address         string       `json:"address,omitempty"`
	Status          OrderStatus  `json:"status"`
	TotalItems      int          `json:"total_items"`
	Subtotal        float64      `json:"subtotal"`
	DeliveryFee     float64      `json:"delivery_fee"`
	TotalAmount     float64      `json:"total_amount"`
	CakeDescription string       `json:"cake_description,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
	Items           []OrderItem  `json:"items"`
}

// Customer is the display name, "Customer" when the backend sent none.
func (o Order) Customer() string {
	if n := strings.TrimSpace(o.CustomerName); n != "" {
		return n
	}
	return "Customer"
}

// ItemSummary renders "<first product> + N more", falling back to the cake
// description and then to "New Order" when the order has no items.
func (o Order) ItemSummary() string {
	if len(o.Items) == 0 {
		if d := strings.TrimSpace(o.CakeDescription); d != "" {
			return d
		}
		return "New Order"
	}
	first := o.Items[0].Product
	if rest := len(o.Items) - 1; rest > 0 {
		return fmt.Sprintf("%s + %d more", first, rest)
	}
	return first
}

// StatusUpdateResult is the backend answer to a status change.
type StatusUpdateResult struct {
	Success           bool   `json:"success"`
	NotificationSent  bool   `json:"notification_sent"`
	NotificationError string `json:"notification_error,omitempty"`
	Duplicate         bool   `json:"duplicate,omitempty"`
}
