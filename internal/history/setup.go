package history

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
)

// PrimeDB 是history模块的初始化入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&HistoryRecord{}); err != nil {
		return fmt.Errorf("无法迁移history_record表: %w", err)
	}
	fmt.Println("HistoryRecord数据库表迁移成功。")
	return nil
}
