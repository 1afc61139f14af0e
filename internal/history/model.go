package history

import (
	"time"
)

// HistoryRecord 是历史归档：每个用户每个已翻转日期恰好一行的不可变快照。
// 只有重置引擎写入它，并且写入走以(user_id, day)为键的幂等UPSERT，
// 重跑同一日期不会产生重复行。归档密集无缺口：当日没有台账行的用户
// 会被合成一行全零快照。
type HistoryRecord struct {
	ID uint `gorm:"primarykey"`

	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_history_user_day"`
	Day    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_history_user_day;index"`

	Training   bool `gorm:"default:false"`
	Nutrition  bool `gorm:"default:false"`
	Movement   bool `gorm:"default:false"`
	Meditation bool `gorm:"default:false"`

	Steps int `gorm:"default:0"`

	// Points 是归档时刻计算的得分快照，等于完成标记为真的个数
	Points int `gorm:"default:0"`

	// Note 是归档时刻封存的当日备忘内容
	Note string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
