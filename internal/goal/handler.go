package goal

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GoalResponse 定义了目标接口的JSON响应结构
type GoalResponse struct {
	DailyStepsGoal   int `json:"daily_steps_goal"`
	WeeklyPointsGoal int `json:"weekly_points_goal"`
}

// UpdateGoalRequest 定义了目标更新请求体，字段可部分缺省
type UpdateGoalRequest struct {
	DailyStepsGoal   *int `json:"daily_steps_goal"`
	WeeklyPointsGoal *int `json:"weekly_points_goal"`
}

// GetMyGoals 返回当前用户的目标配置
func GetMyGoals(c *gin.Context) {
	userID := user.CurrentUserID(c)

	g, err := GetForUser(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取目标配置"})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{
		DailyStepsGoal:   g.DailyStepsGoal,
		WeeklyPointsGoal: g.WeeklyPointsGoal,
	})
}

// UpdateMyGoals 更新当前用户的目标配置，未提供的字段保持原值
func UpdateMyGoals(c *gin.Context) {
	userID := user.CurrentUserID(c)

	var body UpdateGoalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	g, err := GetForUser(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取目标配置"})
		return
	}

	if body.DailyStepsGoal != nil {
		g.DailyStepsGoal = *body.DailyStepsGoal
	}
	if body.WeeklyPointsGoal != nil {
		g.WeeklyPointsGoal = *body.WeeklyPointsGoal
	}

	if err := Upsert(database.DB, g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法保存目标配置"})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{
		DailyStepsGoal:   g.DailyStepsGoal,
		WeeklyPointsGoal: g.WeeklyPointsGoal,
	})
}
