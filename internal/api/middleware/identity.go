package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Milestone/internal/pkg/response"
)

// IdentityMiddleware 从 X-User-ID 头解析调用者身份并注入 Context。
// 认证协议由上游网关负责，这里只做身份透传。
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			response.Fail(c, response.Unauthorized, "缺少用户标识")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			response.Fail(c, response.Unauthorized, "用户标识无效")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
