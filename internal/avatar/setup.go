package avatar

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
)

// PrimeDB 是avatar模块的初始化入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&AvatarState{}); err != nil {
		return fmt.Errorf("无法迁移avatar_state表: %w", err)
	}
	fmt.Println("AvatarState数据库表迁移成功。")
	return nil
}

// WarmupCache 把所有用户的活力等级从SQLite重建到Redis镜像中
func WarmupCache() error {
	var states []AvatarState
	if err := database.DB.Select("user_id", "vitality_level").Find(&states).Error; err != nil {
		return fmt.Errorf("无法从SQLite读取活力等级: %w", err)
	}

	pipe := database.RDB.Pipeline()
	// 先清空旧镜像，确保数据一致性
	pipe.Del(database.Ctx, VitalityKey)
	for _, s := range states {
		pipe.HSet(database.Ctx, VitalityKey, s.UserID, s.VitalityLevel)
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热活力等级镜像到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 条活力等级到Redis。\n", len(states))
	return nil
}
