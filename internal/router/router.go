// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"worklog/internal/cache"
	"worklog/internal/config"
	"worklog/internal/database"
	"worklog/internal/handler"
	"worklog/internal/handler/users"
	"worklog/internal/handler/worklog"
	"worklog/internal/middleware"
	"worklog/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
	}))

	policy := service.SingleWriterPolicy(cfg.AllowedUserID)
	writeLimit := middleware.RateLimit(rdb, cfg.RateLimitRPS, time.Second)

	// 存活探針
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db, rdb))

	api := e.Group("/api/v1")

	// Users CRUD（無授權限制）
	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	// 工時紀錄：讀取可匿名，寫入需通過驗證與政策檢查
	apiWorkLog := api.Group("/work-log")
	apiWorkLog.GET("", worklog.ListHandler(db, policy), middleware.OptionalAuth)
	apiWorkLog.POST("", worklog.CreateHandler(db, policy), middleware.RequireAuth, writeLimit)
	apiWorkLog.POST("/bulk", worklog.BulkCreateHandler(db, policy), middleware.RequireAuth, writeLimit)
	apiWorkLog.DELETE("/:id", worklog.DeleteHandler(db, policy), middleware.RequireAuth, writeLimit)
}
