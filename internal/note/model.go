package note

import (
	"time"
)

// DailyNote 是用户在某个日期写下的自由文本备忘。
// 每个(用户, 日期)至多一行；归档时重置引擎会把当日内容一并封存。
type DailyNote struct {
	ID uint `gorm:"primarykey"`

	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_daily_note_user_day"`
	Day    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_note_user_day"`

	Content string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
