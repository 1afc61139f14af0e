package note

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetForDate 读取一个用户在指定日期的备忘，不存在时返回 (nil, nil)。
func GetForDate(db *gorm.DB, userID, day string) (*DailyNote, error) {
	var n DailyNote
	err := db.Where("user_id = ? AND day = ?", userID, day).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法读取用户 %s 在 %s 的备忘: %w", userID, day, err)
	}
	return &n, nil
}

// ContentForDate 返回一个用户在指定日期的备忘内容，缺行时返回空串。
// 重置引擎归档时用它取得当日笔记。
func ContentForDate(db *gorm.DB, userID, day string) (string, error) {
	n, err := GetForDate(db, userID, day)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", nil
	}
	return n.Content, nil
}

// Upsert 以(user_id, day)为键幂等写入一条备忘。
func Upsert(db *gorm.DB, n *DailyNote) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(n).Error
	if err != nil {
		return fmt.Errorf("无法写入用户 %s 在 %s 的备忘: %w", n.UserID, n.Day, err)
	}
	return nil
}
