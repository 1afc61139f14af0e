package habit

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/gin-gonic/gin"
)

// HabitDayResponse 定义了习惯台账行的JSON响应结构
type HabitDayResponse struct {
	Day         string `json:"day"`
	Training    bool   `json:"training"`
	Nutrition   bool   `json:"nutrition"`
	Movement    bool   `json:"movement"`
	Meditation  bool   `json:"meditation"`
	Steps       int    `json:"steps"`
	TotalPoints int    `json:"total_points"`
}

// UpdateHabitsRequest 定义了习惯更新请求体。
// 指针字段允许部分更新：未提供的字段保持现状。
type UpdateHabitsRequest struct {
	Day        string `json:"day" binding:"required"`
	Training   *bool  `json:"training"`
	Nutrition  *bool  `json:"nutrition"`
	Movement   *bool  `json:"movement"`
	Meditation *bool  `json:"meditation"`
	Steps      *int   `json:"steps"`
}

func toResponse(h *HabitDay) HabitDayResponse {
	return HabitDayResponse{
		Day:         h.Day,
		Training:    h.Training,
		Nutrition:   h.Nutrition,
		Movement:    h.Movement,
		Meditation:  h.Meditation,
		Steps:       h.Steps,
		TotalPoints: h.Points(),
	}
}

// GetToday 返回当前用户今天的台账行，首次访问时创建全零行
func GetToday(c *gin.Context) {
	userID := user.CurrentUserID(c)
	today := dateutil.Today(config.Cfg.Scheduler.Location())

	h, err := EnsureForDate(database.DB, userID, today)
	if err != nil {
		alert.Log(database.DB, alert.SeverityError, "读取今日习惯失败", &alert.Context{UserID: userID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取今日习惯"})
		return
	}

	c.JSON(http.StatusOK, toResponse(h))
}

// UpdateHabits 部分更新当前用户某一天的习惯记录
func UpdateHabits(c *gin.Context) {
	userID := user.CurrentUserID(c)

	var body UpdateHabitsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if !dateutil.IsValid(body.Day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式必须为YYYY-MM-DD"})
		return
	}
	if body.Steps != nil && *body.Steps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "步数不能为负"})
		return
	}

	// 读取现有行（可能不存在），再套用请求中提供的字段
	existing, err := GetForDate(database.DB, userID, body.Day)
	if err != nil {
		alert.Log(database.DB, alert.SeverityError, "读取习惯记录失败", &alert.Context{UserID: userID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取习惯记录"})
		return
	}

	h := HabitDay{UserID: userID, Day: body.Day}
	if existing != nil {
		h = *existing
	}
	if body.Training != nil {
		h.Training = *body.Training
	}
	if body.Nutrition != nil {
		h.Nutrition = *body.Nutrition
	}
	if body.Movement != nil {
		h.Movement = *body.Movement
	}
	if body.Meditation != nil {
		h.Meditation = *body.Meditation
	}
	if body.Steps != nil {
		h.Steps = *body.Steps
	}

	if err := Upsert(database.DB, &h); err != nil {
		alert.Log(database.DB, alert.SeverityError, "更新习惯记录失败", &alert.Context{UserID: userID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法更新习惯记录"})
		return
	}

	c.JSON(http.StatusOK, toResponse(&h))
}
