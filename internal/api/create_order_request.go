package api

// swagger:model api.OrderItemRequest
type OrderItemRequest struct {
	ProductID int `json:"product_id" validate:"required" example:"1"`
	Quantity  int `json:"quantity" validate:"required,gt=0" example:"2"`
}

// swagger:model api.CreateOrderRequest
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}
