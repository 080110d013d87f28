package store

import (
	"context"
	"fmt"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"
)

var sampleProducts = []model.Product{
	{
		Name:          "MacBook Pro 16\"",
		Description:   "Apple MacBook Pro with M2 Pro chip",
		Price:         2499.99,
		StockQuantity: 10,
		Category:      "Electronics",
		ImageURL:      "https://via.placeholder.com/300x300?text=MacBook",
	},
	{
		Name:          "iPhone 15 Pro",
		Description:   "Latest iPhone with titanium design",
		Price:         999.99,
		StockQuantity: 25,
		Category:      "Electronics",
		ImageURL:      "https://via.placeholder.com/300x300?text=iPhone",
	},
	{
		Name:          "Nike Air Max",
		Description:   "Comfortable running shoes",
		Price:         129.99,
		StockQuantity: 50,
		Category:      "Shoes",
		ImageURL:      "https://via.placeholder.com/300x300?text=Nike",
	},
	{
		Name:          "Gaming Chair",
		Description:   "Ergonomic gaming chair with RGB lighting",
		Price:         299.99,
		StockQuantity: 15,
		Category:      "Furniture",
		ImageURL:      "https://via.placeholder.com/300x300?text=Chair",
	},
	{
		Name:          "Wireless Headphones",
		Description:   "Premium noise-cancelling headphones",
		Price:         199.99,
		StockQuantity: 30,
		Category:      "Electronics",
		ImageURL:      "https://via.placeholder.com/300x300?text=Headphones",
	},
}

// SeedProducts 在商品表為空時寫入範例型錄，已有資料則不動作
func SeedProducts(ctx context.Context, db database.DB) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("SeedProducts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleProducts {
		p := sampleProducts[i]
		if _, err := CreateProduct(ctx, db, &p); err != nil {
			return fmt.Errorf("SeedProducts: %w", err)
		}
	}
	return nil
}
