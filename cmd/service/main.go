// @title        Cloudnautic Shop API
// @version      1.0
// @description  Cloudnautic Shop 的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/router"
	"cloudnautic-shop/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "cloudnautic-shop/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	seedProductsFn  = store.SeedProducts
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	// .env 不存在時直接使用系統環境變數
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	// 首次啟動時寫入範例型錄
	if err := seedProductsFn(context.Background(), db); err != nil {
		return fmt.Errorf("Seed 執行失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
