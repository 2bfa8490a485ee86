package middleware

import (
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/redis"
)

// RateLimitMiddleware 基于 Redis 的固定窗口限流，按客户端 IP 计数
func RateLimitMiddleware(keyPrefix string, rule config.RateLimitRule) gin.HandlerFunc {
	window := time.Duration(rule.WindowSeconds) * time.Second

	return func(c *gin.Context) {
		key := keyPrefix + c.ClientIP()

		count, err := redis.IncrWithWindow(c.Request.Context(), key, window)
		if err != nil {
			// Redis 故障时放行，不因限流组件拖垮主流程
			log.WarnContext(c.Request.Context(), "rate limit check failed", "err", err)
			c.Next()
			return
		}

		if count > int64(rule.Limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Response{
				Code:    http.StatusTooManyRequests,
				Message: "请求过于频繁，请稍后再试",
				Data:    nil,
			})
			return
		}

		c.Next()
	}
}
