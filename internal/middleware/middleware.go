package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"worklog/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var verifyAccessToken = service.VerifyAccessToken

func extractUser(c echo.Context) (*service.CurrentUser, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	user, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return user, nil
}

// RequireAuth 驗證 bearer token，失敗即回 401。
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := extractUser(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, user)
		return next(c)
	}
}

// OptionalAuth 嘗試驗證 bearer token，任何失敗都降級為匿名繼續處理。
func OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := extractUser(c); err == nil {
			c.Set(ContextUserKey, user)
		}
		return next(c)
	}
}

// CurrentUser 取出 RequireAuth / OptionalAuth 放入 context 的身分，
// 匿名時回傳 nil。
func CurrentUser(c echo.Context) *service.CurrentUser {
	user, ok := c.Get(ContextUserKey).(*service.CurrentUser)
	if !ok {
		return nil
	}
	return user
}
