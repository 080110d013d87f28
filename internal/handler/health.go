package handler

import (
	"net/http"
	"time"

	"cloudnautic-shop/internal/api"
	"cloudnautic-shop/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2025-05-01T15:04:05Z07:00"`
}

// HealthHandler 健康檢查，確認資料庫連線
// @Summary     Health check
// @Description 檢查資料庫連線是否正常，供負載平衡器探測
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
	}
}
