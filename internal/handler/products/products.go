package products

import (
	"errors"
	"net/http"
	"strconv"

	"cloudnautic-shop/internal/api"
	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"
	"cloudnautic-shop/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

var (
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	listCategories = store.ListCategories
)

func productResponse(p *model.Product) api.ProductResponse {
	return api.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
	}
}

// 非法或缺漏的分頁參數回退為預設值
func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// @Summary     List products
// @Description 分頁列出商品，可依分類過濾；超出範圍的頁數回傳空列表
// @Tags        products
// @Produce     json
// @Param       category query string false "分類（完全相符）"
// @Param       page     query int    false "頁數 (>=1)"
// @Param       per_page query int    false "每頁筆數 (>=1)"
// @Success     200 {object} api.ListProductsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := store.ListProductsParams{
			Category: c.QueryParam("category"),
			Page:     queryInt(c, "page", defaultPage),
			PerPage:  queryInt(c, "per_page", defaultPerPage),
		}

		items, total, err := listProducts(c.Request().Context(), db, params)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch products"})
		}

		resp := api.ListProductsResponse{
			Products: make([]api.ProductResponse, 0, len(items)),
			Pagination: api.Pagination{
				Page:    params.Page,
				PerPage: params.PerPage,
				Total:   total,
				Pages:   (total + params.PerPage - 1) / params.PerPage,
			},
		}
		for i := range items {
			resp.Products = append(resp.Products, productResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a product by ID
// @Description 依 ID 回傳單一商品
// @Tags        products
// @Produce     json
// @Param       id path int true "商品 ID"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		p, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch product"})
		}
		return c.JSON(http.StatusOK, productResponse(p))
	}
}

// @Summary     Create a product
// @Description 建立新商品，價格與庫存不可為負
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body api.CreateProductRequest true "商品資料"
// @Success     201 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		p, err := createProduct(c.Request().Context(), db, &model.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			StockQuantity: req.StockQuantity,
			Category:      req.Category,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create product"})
		}
		return c.JSON(http.StatusCreated, productResponse(p))
	}
}

// @Summary     List categories
// @Description 回傳所有非空的商品分類
// @Tags        products
// @Produce     json
// @Success     200 {array} string
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch categories"})
		}
		return c.JSON(http.StatusOK, categories)
	}
}
