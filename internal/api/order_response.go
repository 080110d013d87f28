package api

import "time"

// swagger:model api.CreateOrderResponse
type CreateOrderResponse struct {
	OrderID     int     `json:"order_id" example:"7"`
	TotalAmount float64 `json:"total_amount" example:"40.00"`
	Status      string  `json:"status" example:"pending"`
}

// swagger:model api.OrderSummaryResponse
type OrderSummaryResponse struct {
	ID          int       `json:"id" example:"7"`
	TotalAmount float64   `json:"total_amount" example:"40.00"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
