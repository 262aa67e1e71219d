package middlewares

import (
	"strings"

	"masalacafe/pkg/resp"
	"masalacafe/utils"

	"github.com/gin-gonic/gin"
)

// AuthGuard ตรวจ token; ไม่ผ่านให้ FE พาไป /login
func AuthGuard(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.UnauthorizedRedirect(c, "missing or invalid token", "/login")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.UnauthorizedRedirect(c, "invalid token", "/login")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminGuard ใช้ต่อจาก AuthGuard — role อื่นเด้งกลับ /dashboard
func AdminGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentRole(c) != "admin" {
			resp.ForbiddenRedirect(c, "forbidden", "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
