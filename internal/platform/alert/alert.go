package alert

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Context 携带一条告警的可选上下文信息。
type Context struct {
	UserID   string
	Err      error
	Metadata map[string]interface{}
}

// migrateDB 负责自动迁移告警表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Alert{}); err != nil {
		return fmt.Errorf("无法迁移alert表: %w", err)
	}
	fmt.Println("Alert数据库表迁移成功。")
	return nil
}

// PrimeDB 是alert模块的初始化入口
func PrimeDB(db *gorm.DB) error {
	return migrateDB(db)
}

// Log 向数据库写入一条告警记录，同时在控制台输出。
// 告警写入失败绝不能影响调用方的主流程，因此错误只打印、不上抛。
func Log(db *gorm.DB, severity Severity, message string, ctx *Context) {
	fmt.Printf("[%s] %s\n", severity, message)

	if db == nil {
		return
	}

	details := map[string]interface{}{}
	if ctx != nil {
		if ctx.UserID != "" {
			details["userId"] = ctx.UserID
		}
		if ctx.Err != nil {
			details["error"] = ctx.Err.Error()
		}
		if len(ctx.Metadata) > 0 {
			details["metadata"] = ctx.Metadata
		}
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	record := Alert{
		Severity: severity,
		Message:  message,
		Details:  string(detailsJSON),
	}
	if err := db.Create(&record).Error; err != nil {
		fmt.Printf("告警写入失败: %v\n", err)
	}
}

// Critical 是记录严重错误的快捷方式。
func Critical(db *gorm.DB, message string, err error) {
	Log(db, SeverityCritical, message, &Context{Err: err})
}

// Warn 是记录警告的快捷方式。
func Warn(db *gorm.DB, message string) {
	Log(db, SeverityWarn, message, nil)
}

// Recent 返回最近的告警记录，供运维诊断接口使用。
// severity 为空时返回所有级别。
func Recent(db *gorm.DB, severity Severity, limit int) ([]Alert, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := db.Order("created_at DESC").Limit(limit)
	if severity != "" {
		query = query.Where("severity = ?", severity)
	}

	var alerts []Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("无法读取告警记录: %w", err)
	}
	return alerts, nil
}

// PurgeOld 删除超过保留期的告警记录，返回删除的行数。
func PurgeOld(db *gorm.DB, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		olderThanDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&Alert{})
	if result.Error != nil {
		return 0, fmt.Errorf("清理过期告警失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}
