package reset

import (
	"fmt"

	"gorm.io/gorm"
)

// migrateDB 负责自动迁移重置执行日志的表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&ResetExecution{}); err != nil {
		return fmt.Errorf("无法迁移reset_executions表: %w", err)
	}
	fmt.Println("Reset数据库表迁移成功。")
	return nil
}

// PrimeDB 是reset模块的初始化入口
func PrimeDB(db *gorm.DB) error {
	return migrateDB(db)
}
