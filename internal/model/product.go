package model

import "time"

type Product struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	Price         float64   `db:"price" json:"price"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	Category      string    `db:"category" json:"category"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
