package history

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert 以(user_id, day)为键幂等写入一行归档快照。
// 这是重置引擎重跑安全性的根基：对同一(用户, 日期)无论写多少次，
// 归档中都只有一行，内容等于最后一次写入。
func Upsert(db *gorm.DB, record *HistoryRecord) error {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"training", "nutrition", "movement", "meditation",
			"steps", "points", "note", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("无法归档用户 %s 在 %s 的快照: %w", record.UserID, record.Day, err)
	}
	return nil
}

// GetRange 按日期升序返回一个用户在[fromDay, toDay]区间内的归档快照。
func GetRange(db *gorm.DB, userID, fromDay, toDay string) ([]HistoryRecord, error) {
	var rows []HistoryRecord
	err := db.Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取用户 %s 的归档区间: %w", userID, err)
	}
	return rows, nil
}

// CountForDay 返回某个日期已归档的用户行数，供诊断接口使用。
func CountForDay(db *gorm.DB, day string) (int64, error) {
	var count int64
	err := db.Model(&HistoryRecord{}).Where("day = ?", day).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("无法统计 %s 的归档行数: %w", day, err)
	}
	return count, nil
}
