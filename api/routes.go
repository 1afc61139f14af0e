package api

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/avatar"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/goal"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/note"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/reset"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/stats"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	router.GET("/health", healthCheck)

	api := router.Group("/api", user.EnsureUserCookieMiddleware())
	{
		// 习惯台账相关的路由组 /api/daily-habits
		habitRoutes := api.Group("/daily-habits", user.RequireUserMiddleware())
		{
			habitRoutes.GET("/today", habit.GetToday)
			habitRoutes.PUT("/update", habit.UpdateHabits)
			habitRoutes.GET("/weekly-points", stats.GetWeeklyPoints)
			habitRoutes.GET("/calendar", stats.GetCalendar)
		}

		// 每日备忘 /api/daily-notes
		noteRoutes := api.Group("/daily-notes", user.RequireUserMiddleware())
		{
			noteRoutes.GET("/:date", note.GetNote)
			noteRoutes.PUT("/:date", note.UpdateNote)
		}

		// 统计相关的路由 /api/stats
		statsRoutes := api.Group("/stats", user.RequireUserMiddleware())
		{
			statsRoutes.GET("/my-stats", stats.GetMyStats)
			statsRoutes.GET("/user/:id", stats.GetUserStats)
		}

		// 目标与形象
		api.GET("/my-goals", user.RequireUserMiddleware(), goal.GetMyGoals)
		api.PUT("/my-goals", user.RequireUserMiddleware(), goal.UpdateMyGoals)
		api.GET("/avatar", user.RequireUserMiddleware(), avatar.GetAvatar)
		api.PUT("/avatar", user.RequireUserMiddleware(), avatar.UpdateAvatar)

		// 运维相关的路由组 /api/admin
		adminRoutes := api.Group("/admin", user.RequireUserMiddleware(), user.RequireAdminMiddleware())
		{
			adminRoutes.GET("/reset-executions", reset.GetRecentExecutions)
			adminRoutes.POST("/reset-executions/run", reset.TriggerRun)
			adminRoutes.GET("/alerts", alert.GetRecentAlerts)
		}
	}
}

// healthCheck 返回服务与依赖的健康状况
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"redis":  database.IsRedisHealthy(),
	})
}
