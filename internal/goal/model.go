package goal

import (
	"time"

	"gorm.io/gorm"
)

// 目标取值边界。管理端和用户端的写入都会被钳制到这个区间内。
const (
	MinDailySteps   = 1000
	MaxDailySteps   = 50000
	MinWeeklyPoints = 7
	MaxWeeklyPoints = 100

	DefaultDailySteps   = 8000
	DefaultWeeklyPoints = 28
)

// Goal 定义了每个用户的目标配置。
// 统计接口只用它做完成率的展示框架，原始聚合不依赖它。
type Goal struct {
	// UserID 是用户UUID，一个用户至多一行
	UserID string `gorm:"primarykey;type:varchar(36)"`

	DailyStepsGoal   int `gorm:"default:8000"`
	WeeklyPointsGoal int `gorm:"default:28"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
