package dto

import "time"

// OrderItemRequest is one checkout line item.
type OrderItemRequest struct {
	BookID   int64   `json:"bookId"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest describes the checkout payload.
type CreateOrderRequest struct {
	TotalPrice float64            `json:"totalPrice"`
	Items      []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest carries the new status for an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one persisted line item.
type OrderItemResponse struct {
	ID       int64   `json:"id"`
	BookID   int64   `json:"bookId"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse describes an order with its items.
type OrderResponse struct {
	ID         int64               `json:"id"`
	UserID     int64               `json:"userId"`
	Status     string              `json:"status"`
	TotalPrice float64             `json:"totalPrice"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}
