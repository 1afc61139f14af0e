package stats

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/gin-gonic/gin"
)

// respondUserStats 组装并返回目标用户的统计负载
func respondUserStats(c *gin.Context, targetUserID string) {
	today := dateutil.Today(config.Cfg.Scheduler.Location())

	result, err := BuildUserStats(database.DB, targetUserID, today)
	if err != nil {
		alert.Log(database.DB, alert.SeverityError, "统计查询失败", &alert.Context{UserID: targetUserID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取统计数据"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMyStats 返回当前用户自己的统计数据
func GetMyStats(c *gin.Context) {
	respondUserStats(c, user.CurrentUserID(c))
}

// GetUserStats 返回指定用户的统计数据。
// 普通用户只能查看自己；管理员可以查看任何人。
func GetUserStats(c *gin.Context) {
	targetUserID := c.Param("id")
	requestingUserID := user.CurrentUserID(c)

	if targetUserID != requestingUserID {
		u, err := user.GetByUUID(database.DB, requestingUserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "无法校验用户权限"})
			return
		}
		if u == nil || u.Role != user.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "只能查看自己的统计数据"})
			return
		}
	}

	respondUserStats(c, targetUserID)
}

// GetWeeklyPoints 返回当前用户本日历周（周日起始）的得分序列
func GetWeeklyPoints(c *gin.Context) {
	userID := user.CurrentUserID(c)
	today := dateutil.Today(config.Cfg.Scheduler.Location())
	weekStart := CalendarWeekStart(today)

	rows, err := habit.GetRange(database.DB, userID, weekStart, dateutil.AddDays(weekStart, WeekDays-1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取周得分"})
		return
	}

	series := DenseWeek(rows, weekStart)
	dailyData := make([]gin.H, 0, len(series))
	for _, entry := range series {
		dailyData = append(dailyData, gin.H{"date": entry.Date, "daily_points": entry.Points})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_points": TotalPoints(series),
		"daily_data":   dailyData,
		"week_start":   weekStart,
	})
}

// calendarWindowDays 是日历视图回溯的天数（约3个月）
const calendarWindowDays = 90

// GetCalendar 返回当前用户近3个月的日得分序列，供打卡日历渲染。
// 只返回有记录的日期，按日期降序。
func GetCalendar(c *gin.Context) {
	userID := user.CurrentUserID(c)
	today := dateutil.Today(config.Cfg.Scheduler.Location())
	windowStart := TrailingWindowStart(today, calendarWindowDays)

	rows, err := habit.GetRange(database.DB, userID, windowStart, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取日历数据"})
		return
	}

	calendarData := make([]gin.H, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		calendarData = append(calendarData, gin.H{
			"date":         rows[i].Day,
			"daily_points": rows[i].Points(),
		})
	}

	c.JSON(http.StatusOK, calendarData)
}
