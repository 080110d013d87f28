package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cloudnautic-shop/internal/api"
	"cloudnautic-shop/internal/database"
	"cloudnautic-shop/internal/model"
	"cloudnautic-shop/internal/service"
	"cloudnautic-shop/internal/store"

	"github.com/labstack/echo/v4"
)

const accessTokenTTL = 24 * time.Hour

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// @Summary     Register a new user
// @Description 建立新帳號並回傳存取令牌 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse "Email 已存在或欄位錯誤"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "registration failed"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			AccessToken: token,
			User:        userResponse(user),
		})
	}
}

// @Summary     Login
// @Description 以 Email 與密碼登入，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "帳號或密碼錯誤"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 帳號不存在與密碼錯誤回應一致，避免洩漏帳號是否存在
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			AccessToken: token,
			User:        userResponse(user),
		})
	}
}
