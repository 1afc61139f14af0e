package goal

import (
	"fmt"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
)

// PrimeDB 是goal模块的初始化入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Goal{}); err != nil {
		return fmt.Errorf("无法迁移goal表: %w", err)
	}
	fmt.Println("Goal数据库表迁移成功。")
	return nil
}
