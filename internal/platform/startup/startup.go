package startup

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/avatar"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/goal"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/history"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/note"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/reset"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := alert.PrimeDB(database.DB); err != nil {
		return err
	}
	if err := user.PrimeCachedDB(); err != nil {
		return err
	}
	if err := goal.PrimeDB(); err != nil {
		return err
	}
	if err := habit.PrimeDB(); err != nil {
		return err
	}
	if err := note.PrimeDB(); err != nil {
		return err
	}
	if err := history.PrimeDB(); err != nil {
		return err
	}
	if err := avatar.PrimeDB(); err != nil {
		return err
	}
	if err := reset.PrimeDB(database.DB); err != nil {
		return err
	}

	// 顺手清理过期告警，失败只告警不阻断启动
	if purged, err := alert.PurgeOld(database.DB, config.Cfg.Alert.RetentionDays); err != nil {
		fmt.Printf("警告: 过期告警清理失败: %v\n", err)
	} else if purged > 0 {
		fmt.Printf("已清理 %d 条过期告警。\n", purged)
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := user.WarmupCache(); err != nil {
		return err
	}
	if err := avatar.WarmupCache(); err != nil {
		return err
	}

	fmt.Println("缓存热重建完成。")
	return nil
}
