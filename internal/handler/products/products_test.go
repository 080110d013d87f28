package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloudnautic-shop/internal/api"
	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"
	"cloudnautic-shop/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	listProducts = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct = store.CreateProduct
	listCategories = store.ListCategories
}

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newGetCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListProductsHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	e := echo.New()

	// defaults applied, pages derived from total
	listProducts = func(_ context.Context, _ database.DB, params store.ListProductsParams) ([]model.Product, int, error) {
		require.Equal(t, store.ListProductsParams{Page: 1, PerPage: 20}, params)
		return []model.Product{{ID: 1, Name: "MacBook"}}, 42, nil
	}
	ctx, rec := newGetCtx(e, "/api/products")
	require.NoError(t, ListProductsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ListProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	require.Equal(t, 42, resp.Pagination.Total)
	require.Equal(t, 3, resp.Pagination.Pages)

	// category filter and explicit paging pass through
	listProducts = func(_ context.Context, _ database.DB, params store.ListProductsParams) ([]model.Product, int, error) {
		require.Equal(t, "Electronics", params.Category)
		require.Equal(t, 2, params.Page)
		require.Equal(t, 5, params.PerPage)
		return []model.Product{}, 7, nil
	}
	ctx, rec = newGetCtx(e, "/api/products?category=Electronics&page=2&per_page=5")
	require.NoError(t, ListProductsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	// out-of-range page is 200 with an empty list, not an error
	listProducts = func(context.Context, database.DB, store.ListProductsParams) ([]model.Product, int, error) {
		return []model.Product{}, 2, nil
	}
	ctx, rec = newGetCtx(e, "/api/products?page=99")
	require.NoError(t, ListProductsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Products)

	// invalid paging params fall back to defaults
	listProducts = func(_ context.Context, _ database.DB, params store.ListProductsParams) ([]model.Product, int, error) {
		require.Equal(t, 1, params.Page)
		require.Equal(t, 20, params.PerPage)
		return []model.Product{}, 0, nil
	}
	ctx, rec = newGetCtx(e, "/api/products?page=-3&per_page=abc")
	require.NoError(t, ListProductsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	// store error
	listProducts = func(context.Context, database.DB, store.ListProductsParams) ([]model.Product, int, error) {
		return nil, 0, errors.New("boom")
	}
	ctx, rec = newGetCtx(e, "/api/products")
	require.NoError(t, ListProductsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetProductHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	e := echo.New()

	// invalid id
	ctx, rec := newGetCtx(e, "/")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")
	require.NoError(t, GetProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// not found
	getProductByID = func(context.Context, database.DB, int) (*model.Product, error) {
		return nil, store.ErrNotFound
	}
	ctx, rec = newGetCtx(e, "/")
	ctx.SetParamNames("id")
	ctx.SetParamValues("99")
	require.NoError(t, GetProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// success
	getProductByID = func(_ context.Context, _ database.DB, id int) (*model.Product, error) {
		require.Equal(t, 3, id)
		return &model.Product{ID: 3, Name: "Gaming Chair", Price: 299.99}, nil
	}
	ctx, rec = newGetCtx(e, "/")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, GetProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Gaming Chair")
}

func TestCreateProductHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}

	newCtx := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	// negative price rejected by validation
	ctx, rec := newCtx(`{"name":"Desk","price":-1,"stock_quantity":5}`)
	require.NoError(t, CreateProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// negative stock rejected by validation
	ctx, rec = newCtx(`{"name":"Desk","price":1,"stock_quantity":-5}`)
	require.NoError(t, CreateProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// store error
	createProduct = func(context.Context, database.DB, *model.Product) (*model.Product, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newCtx(`{"name":"Desk","price":100,"stock_quantity":5}`)
	require.NoError(t, CreateProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	createProduct = func(_ context.Context, _ database.DB, p *model.Product) (*model.Product, error) {
		require.Equal(t, "Desk", p.Name)
		require.Equal(t, 100.0, p.Price)
		p.ID = 6
		return p, nil
	}
	ctx, rec = newCtx(`{"name":"Desk","price":100,"stock_quantity":5,"category":"Furniture"}`)
	require.NoError(t, CreateProductHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestListCategoriesHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	e := echo.New()

	listCategories = func(context.Context, database.DB) ([]string, error) {
		return []string{"Electronics", "Shoes"}, nil
	}
	ctx, rec := newGetCtx(e, "/api/categories")
	require.NoError(t, ListCategoriesHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Electronics")

	listCategories = func(context.Context, database.DB) ([]string, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newGetCtx(e, "/api/categories")
	require.NoError(t, ListCategoriesHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
