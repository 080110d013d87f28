package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

type fakeIntRow struct {
	n       int
	scanErr error
}

func (r *fakeIntRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.n
	return nil
}

type fakeProductRow struct {
	scanErr error
	product *model.Product
}

func (r *fakeProductRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.product
	switch len(dest) {
	case 8:
		*dest[0].(*int) = p.ID
		*dest[1].(*string) = p.Name
		*dest[2].(*string) = p.Description
		*dest[3].(*float64) = p.Price
		*dest[4].(*int) = p.StockQuantity
		*dest[5].(*string) = p.Category
		*dest[6].(*string) = p.ImageURL
		*dest[7].(*time.Time) = p.CreatedAt
	case 2:
		*dest[0].(*int) = p.ID
		*dest[1].(*time.Time) = p.CreatedAt
	default:
		panic("fakeProductRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeProductRows 依序輸出商品列，實作 pgx.Rows
type fakeProductRows struct {
	products []model.Product
	idx      int
}

func (r *fakeProductRows) Close()                                       {}
func (r *fakeProductRows) Err() error                                   { return nil }
func (r *fakeProductRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProductRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProductRows) Next() bool                                   { return r.idx < len(r.products) }
func (r *fakeProductRows) Scan(dest ...any) error {
	p := r.products[r.idx]
	r.idx++
	return (&fakeProductRow{product: &p}).Scan(dest...)
}
func (r *fakeProductRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProductRows) RawValues() [][]byte    { return nil }
func (r *fakeProductRows) Conn() *pgx.Conn        { return nil }

type fakeStringRows struct {
	values []string
	idx    int
}

func (r *fakeStringRows) Close()                                       {}
func (r *fakeStringRows) Err() error                                   { return nil }
func (r *fakeStringRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeStringRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeStringRows) Next() bool                                   { return r.idx < len(r.values) }
func (r *fakeStringRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.values[r.idx]
	r.idx++
	return nil
}
func (r *fakeStringRows) Values() ([]any, error) { return nil, nil }
func (r *fakeStringRows) RawValues() [][]byte    { return nil }
func (r *fakeStringRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestListProducts(t *testing.T) {
	now := time.Now().UTC()
	catalog := []model.Product{
		{ID: 1, Name: "MacBook", Price: 2499.99, StockQuantity: 10, Category: "Electronics", CreatedAt: now},
		{ID: 2, Name: "iPhone", Price: 999.99, StockQuantity: 25, Category: "Electronics", CreatedAt: now},
	}

	t.Run("without category", func(t *testing.T) {
		var gotQuery string
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeIntRow{n: 2}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotQuery = sql
				require.Equal(t, []any{20, 0}, args)
				return &fakeProductRows{products: catalog}, nil
			},
		}
		items, total, err := ListProducts(context.Background(), db, ListProductsParams{Page: 1, PerPage: 20})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, items, 2)
		require.NotContains(t, gotQuery, "category")
	})

	t.Run("with category filter", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "category")
				require.Equal(t, []any{"Electronics"}, args)
				return &fakeIntRow{n: 2}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "category = $1")
				require.Equal(t, []any{"Electronics", 10, 0}, args)
				return &fakeProductRows{products: catalog}, nil
			},
		}
		items, total, err := ListProducts(context.Background(), db, ListProductsParams{
			Category: "Electronics", Page: 1, PerPage: 10,
		})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, items, 2)
	})

	t.Run("out of range page yields empty slice", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeIntRow{n: 2}
			},
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{20, 180}, args)
				return &fakeProductRows{}, nil
			},
		}
		items, total, err := ListProducts(context.Background(), db, ListProductsParams{Page: 10, PerPage: 20})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("count error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeIntRow{scanErr: errors.New("count")}
			},
		}
		_, _, err := ListProducts(context.Background(), db, ListProductsParams{Page: 1, PerPage: 20})
		require.Error(t, err)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeIntRow{n: 2}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, _, err := ListProducts(context.Background(), db, ListProductsParams{Page: 1, PerPage: 20})
		require.Error(t, err)
	})
}

func TestGetProductByID(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.Product{ID: 3, Name: "Gaming Chair", Price: 299.99, StockQuantity: 15, Category: "Furniture", CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{product: sample}
			},
		}
		p, err := GetProductByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, "Gaming Chair", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: pgx.ErrNoRows}
			},
		}
		p, err := GetProductByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, p)
	})
}

func TestCreateProduct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 6)
				return &fakeProductRow{product: &model.Product{ID: 9, CreatedAt: now}}
			},
		}
		p, err := CreateProduct(context.Background(), db, &model.Product{Name: "Desk", Price: 100})
		require.NoError(t, err)
		require.Equal(t, 9, p.ID)
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: errors.New("insert")}
			},
		}
		_, err := CreateProduct(context.Background(), db, &model.Product{Name: "Desk"})
		require.Error(t, err)
	})
}

func TestListCategories(t *testing.T) {
	t.Run("excludes empty values", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.Contains(t, strings.ToUpper(sql), "DISTINCT")
				require.Contains(t, sql, "category <> ''")
				return &fakeStringRows{values: []string{"Electronics", "Furniture", "Shoes"}}, nil
			},
		}
		cats, err := ListCategories(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, []string{"Electronics", "Furniture", "Shoes"}, cats)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListCategories(context.Background(), db)
		require.Error(t, err)
	})
}
