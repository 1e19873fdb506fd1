package middleware

import (
	"net/http"
	"time"

	"worklog/internal/api"
	"worklog/internal/cache"

	"github.com/labstack/echo/v4"
)

// RateLimit 以 Redis 計數器限制每個來源 IP 在時間窗內的請求數。
// 窗內第一次命中時設定過期時間；Redis 故障時放行，不阻斷正常流量。
func RateLimit(rdb cache.Cache, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}
			if count > int64(maxRequests) {
				return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "too many requests"})
			}
			return next(c)
		}
	}
}
