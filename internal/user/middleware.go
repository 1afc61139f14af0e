package user

import (
	"fmt"
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

const (
	CookieName   = "user-id"
	CookieMaxAge = 365 * 24 * 60 * 60
	UserIDKey    = "userID"
)

// EnsureUserCookieMiddleware 确保客户端持有一个格式正确的user-id cookie。
// 如果没有或格式不正确，它会生成一个新的临时ID并设置cookie。
func EnsureUserCookieMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := c.Cookie(CookieName)

		// 如果Cookie不存在，或存在但格式不正确，则分发一个新的。
		// 新ID同时放进上下文，让同一个请求的后续中间件能直接使用。
		if err != nil || !IsValidUUID(userID) {
			if err != http.ErrNoCookie {
				fmt.Printf("检测到无效的用户Cookie: %s, err: %v\n", userID, err)
			}
			provisionalUserID, err := CreateProvisionalUser()
			if err != nil {
				fmt.Printf("创建临时用户ID时发生错误: %v\n", err)
			} else {
				c.SetCookie(CookieName, provisionalUserID, CookieMaxAge, "/", "", false, true)
				c.Set(UserIDKey, provisionalUserID)
			}
		}

		c.Next()
	}
}

// RequireUserMiddleware 读取cookie、激活用户并将UUID放入Gin上下文中。
// 写入类接口（习惯更新、目标设置）依赖它保证用户行已存在。
func RequireUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)
		if userID == "" {
			var err error
			userID, err = c.Cookie(CookieName)
			if err != nil || !IsValidUUID(userID) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "缺少有效的用户标识"})
				return
			}
		}

		if err := ActivateUser(userID); err != nil {
			fmt.Printf("激活用户 %s 失败: %v\n", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "无法初始化用户"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RequireAdminMiddleware 在RequireUserMiddleware之后使用，校验当前用户的管理员角色。
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)

		u, err := GetByUUID(database.DB, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "无法校验用户角色"})
			return
		}
		if u == nil || u.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "需要管理员权限"})
			return
		}

		c.Next()
	}
}

// CurrentUserID 从Gin上下文中取出当前用户UUID。
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
