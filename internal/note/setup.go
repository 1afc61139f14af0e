package note

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
)

// PrimeDB 是note模块的初始化入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&DailyNote{}); err != nil {
		return fmt.Errorf("无法迁移daily_note表: %w", err)
	}
	fmt.Println("DailyNote数据库表迁移成功。")
	return nil
}
