// File: internal/handler/health.go
package handler

import (
	"net/http"

	"worklog/internal/api"
	"worklog/internal/cache"
	"worklog/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// RootHandler 服務入口訊息
// @Summary     Root
// @Description 回傳歡迎訊息
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "work log service"})
	}
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
