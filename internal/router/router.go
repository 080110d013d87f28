package router

import (
	"github.com/labstack/echo/v4"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/handler"
	"cloudnautic-shop/internal/handler/auth"
	"cloudnautic-shop/internal/handler/orders"
	"cloudnautic-shop/internal/handler/products"
	"cloudnautic-shop/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB) {
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))

	api := e.Group("/api")

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// 商品型錄（讀取免認證，建立需要 Bearer token）
	api.GET("/products", products.ListProductsHandler(db))
	api.GET("/products/:id", products.GetProductHandler(db))
	api.POST("/products", products.CreateProductHandler(db), middleware.RequireAuth)
	api.GET("/categories", products.ListCategoriesHandler(db))

	// 訂單（皆需 Bearer token）
	apiOrders := api.Group("/orders", middleware.RequireAuth)
	apiOrders.POST("", orders.CreateOrderHandler(db))
	apiOrders.GET("", orders.ListOrdersHandler(db))
}
