package goal

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clamp 把一个值钳制到[min, max]区间内。
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Normalize 将目标值钳制到合法区间；零值字段回退到默认值。
func (g *Goal) Normalize() {
	if g.DailyStepsGoal == 0 {
		g.DailyStepsGoal = DefaultDailySteps
	}
	if g.WeeklyPointsGoal == 0 {
		g.WeeklyPointsGoal = DefaultWeeklyPoints
	}
	g.DailyStepsGoal = clamp(g.DailyStepsGoal, MinDailySteps, MaxDailySteps)
	g.WeeklyPointsGoal = clamp(g.WeeklyPointsGoal, MinWeeklyPoints, MaxWeeklyPoints)
}

// GetForUser 返回一个用户的目标配置。
// 没有显式配置时返回默认值，而不是错误。
func GetForUser(db *gorm.DB, userID string) (*Goal, error) {
	var g Goal
	err := db.Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Goal{
				UserID:           userID,
				DailyStepsGoal:   DefaultDailySteps,
				WeeklyPointsGoal: DefaultWeeklyPoints,
			}, nil
		}
		return nil, fmt.Errorf("无法读取用户 %s 的目标配置: %w", userID, err)
	}
	g.Normalize()
	return &g, nil
}

// Upsert 写入一个用户的目标配置，幂等。
func Upsert(db *gorm.DB, g *Goal) error {
	g.Normalize()
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_steps_goal", "weekly_points_goal", "updated_at"}),
	}).Create(g).Error
	if err != nil {
		return fmt.Errorf("无法保存用户 %s 的目标配置: %w", g.UserID, err)
	}
	return nil
}
