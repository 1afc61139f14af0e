package habit

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
)

// PrimeDB 是habit模块的初始化入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&HabitDay{}); err != nil {
		return fmt.Errorf("无法迁移habit_day表: %w", err)
	}
	fmt.Println("HabitDay数据库表迁移成功。")
	return nil
}
