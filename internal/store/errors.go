package store

import (
	"errors"
	"fmt"
)

// 操作層錯誤類別，由 handler 統一對應 HTTP 狀態碼
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// InsufficientStockError 表示下單品項不存在或庫存不足
// 整筆交易會回滾，不會留下部分扣減
type InsufficientStockError struct {
	ProductID   int
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("insufficient stock for product %s", e.ProductName)
	}
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}
