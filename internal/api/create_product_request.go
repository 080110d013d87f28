package api

// 價格與庫存不可為負，與資料表 CHECK 約束一致
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required" example:"Wireless Headphones"`
	Description   string  `json:"description" example:"Premium noise-cancelling headphones"`
	Price         float64 `json:"price" validate:"gte=0" example:"199.99"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0" example:"30"`
	Category      string  `json:"category" example:"Electronics"`
	ImageURL      string  `json:"image_url" example:"https://example.com/headphones.png"`
}
