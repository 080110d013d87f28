package store

import (
	"context"
	"errors"
	"fmt"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"

	"github.com/jackc/pgx/v5"
)

// ListProductsParams 描述商品列表的查詢條件
// Category 為空字串時不過濾，Page/PerPage 由 handler 正規化為 >= 1
type ListProductsParams struct {
	Category string
	Page     int
	PerPage  int
}

const productColumns = `id, name, description, price, stock_quantity, category, image_url, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.StockQuantity,
		&p.Category,
		&p.ImageURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts 回傳符合條件的分頁商品與總筆數
// 依 id 排序（即建立順序），超出範圍的頁數回傳空列表而非錯誤
func ListProducts(ctx context.Context, db database.DB, params ListProductsParams) ([]model.Product, int, error) {
	var total int
	if params.Category != "" {
		row := db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category = $1`, params.Category)
		if err := row.Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("ListProducts: %w", err)
		}
	} else {
		row := db.QueryRow(ctx, `SELECT COUNT(*) FROM products`)
		if err := row.Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("ListProducts: %w", err)
		}
	}

	offset := (params.Page - 1) * params.PerPage
	var (
		rows pgx.Rows
		err  error
	)
	if params.Category != "" {
		rows, err = db.Query(ctx,
			`SELECT `+productColumns+`
			 FROM products WHERE category = $1
			 ORDER BY id LIMIT $2 OFFSET $3`,
			params.Category, params.PerPage, offset,
		)
	} else {
		rows, err = db.Query(ctx,
			`SELECT `+productColumns+`
			 FROM products
			 ORDER BY id LIMIT $1 OFFSET $2`,
			params.PerPage, offset,
		)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	return products, total, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock_quantity, category, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.StockQuantity,
		p.Category,
		p.ImageURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// ListCategories 回傳所有非空的商品分類
func ListCategories(ctx context.Context, db database.DB) ([]string, error) {
	rows, err := db.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}
