package api

import "time"

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID            int       `json:"id" example:"1"`
	Name          string    `json:"name" example:"Wireless Headphones"`
	Description   string    `json:"description" example:"Premium noise-cancelling headphones"`
	Price         float64   `json:"price" example:"199.99"`
	StockQuantity int       `json:"stock_quantity" example:"30"`
	Category      string    `json:"category" example:"Electronics"`
	ImageURL      string    `json:"image_url" example:"https://example.com/headphones.png"`
	CreatedAt     time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
