package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootResponse 服務資訊回應模型
// swagger:model RootResponse
type RootResponse struct {
	Service   string            `json:"service" example:"Cloudnautic Shop Backend API"`
	Version   string            `json:"version" example:"1.0.0"`
	Status    string            `json:"status" example:"running"`
	Endpoints map[string]string `json:"endpoints"`
}

// RootHandler 回傳服務中繼資料與端點一覽
// @Summary     Service metadata
// @Description 回傳服務名稱、版本與主要端點
// @Tags        meta
// @Produce     json
// @Success     200 {object} RootResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, RootResponse{
			Service: "Cloudnautic Shop Backend API",
			Version: "1.0.0",
			Status:  "running",
			Endpoints: map[string]string{
				"health":     "/health",
				"register":   "/api/auth/register",
				"login":      "/api/auth/login",
				"products":   "/api/products",
				"categories": "/api/categories",
				"orders":     "/api/orders",
			},
		})
	}
}
