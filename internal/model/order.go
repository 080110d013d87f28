package model

import "time"

// OrderStatusPending 為訂單建立後的初始狀態
const OrderStatusPending = "pending"

type Order struct {
	ID          int         `db:"id" json:"id"`
	UserID      int         `db:"user_id" json:"user_id"`
	TotalAmount float64     `db:"total_amount" json:"total_amount"`
	Status      string      `db:"status" json:"status"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	Items       []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem 的 Price 為下單當下的單價快照，之後不隨商品價格變動
type OrderItem struct {
	ID        int     `db:"id" json:"id"`
	OrderID   int     `db:"order_id" json:"order_id"`
	ProductID int     `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}

// OrderItemRequest 表示下單請求中的單一品項
type OrderItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
