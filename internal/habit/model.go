package habit

import (
	"time"
)

// HabitDay 是习惯台账：每个用户每个日历日期至多一行的可变记录。
// 它只被用户侧的更新接口写入；重置引擎只读取它，归档是附加性的，
// “新的一天”不需要清零动作：新日期的行在第一次写入时自然产生。
type HabitDay struct {
	ID uint `gorm:"primarykey"`

	// UserID + Day 构成唯一键，保证每个(用户, 日期)至多一行
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_habit_day_user_day"`
	Day    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_habit_day_user_day;index"`

	// 四个独立的习惯完成标记
	Training   bool `gorm:"default:false"`
	Nutrition  bool `gorm:"default:false"`
	Movement   bool `gorm:"default:false"`
	Meditation bool `gorm:"default:false"`

	// Steps 是当日步数，非负
	Steps int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Points 返回当日得分：完成标记为真的个数，取值0~4。
// 得分永远是派生值，不单独存储，避免与标记不一致。
func (h *HabitDay) Points() int {
	points := 0
	for _, flag := range []bool{h.Training, h.Nutrition, h.Movement, h.Meditation} {
		if flag {
			points++
		}
	}
	return points
}
