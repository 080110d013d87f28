package orders

import (
	"errors"
	"net/http"

	"cloudnautic-shop/internal/api"
	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/middleware"
	"cloudnautic-shop/internal/model"
	"cloudnautic-shop/internal/service"
	"cloudnautic-shop/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	placeOrder       = store.PlaceOrder
	listOrdersByUser = store.ListOrdersByUser
)

// @Summary     Place an order
// @Description 建立訂單：驗證庫存、以當下單價計算總額並扣減庫存，全有或全無
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body api.CreateOrderRequest true "訂單品項"
// @Success     201 {object} api.CreateOrderResponse
// @Failure     400 {object} api.ErrorResponse "庫存不足或欄位錯誤"
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [post]
func CreateOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		items := make([]model.OrderItemRequest, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, model.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		order, err := placeOrder(c.Request().Context(), db, claims.UserID, items)
		if err != nil {
			var stockErr *store.InsufficientStockError
			if errors.As(err, &stockErr) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: stockErr.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create order"})
		}

		return c.JSON(http.StatusCreated, api.CreateOrderResponse{
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
		})
	}
}

// @Summary     List my orders
// @Description 回傳當前使用者的訂單摘要，依建立順序排列
// @Tags        orders
// @Produce     json
// @Success     200 {array} api.OrderSummaryResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [get]
func ListOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		orders, err := listOrdersByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch orders"})
		}

		resp := make([]api.OrderSummaryResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, api.OrderSummaryResponse{
				ID:          o.ID,
				TotalAmount: o.TotalAmount,
				Status:      o.Status,
				CreatedAt:   o.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
