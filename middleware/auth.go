package middleware

import (
	"net/http"
	"strings"

	"adboard/pkg/jwt"
	"adboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录，token 无效直接 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)

		c.Next()
	}
}

// OptionalAuth 尽力识别登录态，token 缺失或无效都放行。
// 点赞、详情页等接口匿名也能访问，只是行为不同。
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("is_admin", claims.IsAdmin)
			}
		}
		c.Next()
	}
}
