package store

import (
	"context"
	"errors"
	"fmt"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"

	"github.com/jackc/pgx/v5"
)

// PlaceOrder 在單一交易內建立訂單：逐項鎖定商品列 (FOR UPDATE)、
// 驗證庫存、以當下單價寫入品項快照並扣減庫存，最後寫回總額
// 任一品項不足即回傳 InsufficientStockError，整筆交易回滾
// 同商品的並行下單會在列鎖上序列化，庫存不可能為負
func PlaceOrder(ctx context.Context, db database.DB, userID int, items []model.OrderItemRequest) (*model.Order, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // commit 後的 rollback 是 no-op

	order := &model.Order{UserID: userID, Status: model.OrderStatusPending}
	row := tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount, status)
		 VALUES ($1, 0, $2)
		 RETURNING id, created_at`,
		userID, order.Status,
	)
	if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}

	for _, it := range items {
		var (
			name  string
			price float64
			stock int
		)
		row := tx.QueryRow(ctx,
			`SELECT name, price, stock_quantity FROM products WHERE id = $1 FOR UPDATE`,
			it.ProductID,
		)
		if err := row.Scan(&name, &price, &stock); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &InsufficientStockError{ProductID: it.ProductID}
			}
			return nil, fmt.Errorf("PlaceOrder: %w", err)
		}
		if it.Quantity > stock {
			return nil, &InsufficientStockError{ProductID: it.ProductID, ProductName: name}
		}

		if _, err := tx.Exec(ctx,
			`UPDATE products SET stock_quantity = stock_quantity - $1 WHERE id = $2`,
			it.Quantity, it.ProductID,
		); err != nil {
			return nil, fmt.Errorf("PlaceOrder: %w", err)
		}

		item := model.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
		}
		row = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.Price,
		)
		if err := row.Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("PlaceOrder: %w", err)
		}

		order.TotalAmount += price * float64(it.Quantity)
		order.Items = append(order.Items, item)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE orders SET total_amount = $1 WHERE id = $2`,
		order.TotalAmount, order.ID,
	); err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}
	return order, nil
}

// ListOrdersByUser 回傳使用者的訂單摘要，依建立順序排列
func ListOrdersByUser(ctx context.Context, db database.DB, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, total_amount, status, created_at
		 FROM orders WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.TotalAmount,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListOrdersByUser: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	return orders, nil
}
