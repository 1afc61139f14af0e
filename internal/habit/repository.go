package habit

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetForDate 读取一个用户在指定日期的台账行。
// 行不存在时返回 (nil, nil)：台账语义中“缺行”不等于“全零”，
// 由调用方决定如何解释缺行。
func GetForDate(db *gorm.DB, userID, day string) (*HabitDay, error) {
	var h HabitDay
	err := db.Where("user_id = ? AND day = ?", userID, day).First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法读取用户 %s 在 %s 的习惯记录: %w", userID, day, err)
	}
	return &h, nil
}

// GetRange 按日期升序返回一个用户在[fromDay, toDay]区间内的所有台账行。
// 区间内没有记录的日期不会出现在结果中，补零是聚合层的职责。
func GetRange(db *gorm.DB, userID, fromDay, toDay string) ([]HabitDay, error) {
	var rows []HabitDay
	err := db.Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取用户 %s 的习惯记录区间: %w", userID, err)
	}
	return rows, nil
}

// Upsert 以(user_id, day)为键幂等写入一行台账。
// 唯一索引冲突时更新全部可变列，保证每个(用户, 日期)永远只有一行。
func Upsert(db *gorm.DB, h *HabitDay) error {
	if h.Steps < 0 {
		return fmt.Errorf("步数不能为负: %d", h.Steps)
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"training", "nutrition", "movement", "meditation", "steps", "updated_at",
		}),
	}).Create(h).Error
	if err != nil {
		return fmt.Errorf("无法写入用户 %s 在 %s 的习惯记录: %w", h.UserID, h.Day, err)
	}
	return nil
}

// EnsureForDate 返回一个用户在指定日期的台账行，不存在时创建全零行。
// “今日习惯”页面首次打开时依赖它。
func EnsureForDate(db *gorm.DB, userID, day string) (*HabitDay, error) {
	existing, err := GetForDate(db, userID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	h := &HabitDay{UserID: userID, Day: day}
	if err := Upsert(db, h); err != nil {
		return nil, err
	}
	return GetForDate(db, userID, day)
}
