package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ActiveUserIDs 返回所有参与每日重置批处理的用户UUID。
// 这是重置引擎的花名册来源，直接读SQLite而不是Redis缓存：
// 归档的完整性比这一次查询的性能更重要。
func ActiveUserIDs(db *gorm.DB) ([]string, error) {
	var ids []string
	err := db.Model(&User{}).Where("is_active = ?", true).Order("uuid").Pluck("uuid", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取活跃用户列表: %w", err)
	}
	return ids, nil
}

// GetByUUID 按主键读取一个用户。
// 用户不存在时返回 (nil, nil)，供调用方区分“查询失败”和“查无此人”。
func GetByUUID(db *gorm.DB, uuidStr string) (*User, error) {
	var u User
	err := db.Where("uuid = ?", uuidStr).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法读取用户 %s: %w", uuidStr, err)
	}
	return &u, nil
}
