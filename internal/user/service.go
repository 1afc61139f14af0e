package user

import (
	"errors"
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProvisionalUser 生成一个临时的、尚未持久化的新用户UUID。
// 这个UUID将被设置到cookie中，但此时尚未被“激活”。
func CreateProvisionalUser() (string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成UUID v7: %w", err)
	}
	return newUUID.String(), nil
}

// IsValidUUID 检查一个字符串是否是格式合法的UUID。
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsUserActivated 检查一个给定的UUID是否已经被激活（即存在于我们的持久化系统中）。
// 优先查询Redis缓存；Redis不可用时退回SQLite，保证请求路径不中断。
func IsUserActivated(uuidStr string) (bool, error) {
	if uuidStr == "" {
		return false, nil
	}

	if database.RedisAvailable() {
		exists, err := database.RDB.SIsMember(database.Ctx, KnownUsersKey, uuidStr).Result()
		if err == nil {
			return exists, nil
		}
		fmt.Printf("检查Redis用户缓存时出错，回退到SQLite: %v\n", err)
	}

	u, err := GetByUUID(database.DB, uuidStr)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// ActivateUser 将一个临时的UUID正式持久化到数据库和缓存中。
// 这个操作是原子性的，如果缓存写入失败，数据库写入将被回滚。
func ActivateUser(uuidStr string) error {
	activated, err := IsUserActivated(uuidStr)
	if err != nil {
		return err
	}
	if activated {
		return nil // 用户已存在，无需操作
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("无法开始数据库事务: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback() // 如果发生panic，回滚事务
		}
	}()

	newUser := User{UUID: uuidStr, Role: RoleUser, IsActive: true}
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		// 记录已存在不是真正的错误
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("无法在SQLite中创建新用户: %w", err)
	}

	// 将新UUID同步进Redis缓存；Redis不可用时跳过，由下一次缓存预热补齐
	if database.RedisAvailable() {
		if err := database.RDB.SAdd(database.Ctx, KnownUsersKey, uuidStr).Err(); err != nil {
			tx.Rollback()
			return fmt.Errorf("无法将新用户 %s 添加到Redis缓存: %w", uuidStr, err)
		}
	}

	return tx.Commit().Error
}
