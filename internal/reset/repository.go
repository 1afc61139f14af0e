package reset

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LastSuccessfulResetDate 返回最近一次成功执行的重置日期。
// 从未成功过时返回空串。
func LastSuccessfulResetDate(db *gorm.DB) (string, error) {
	var execution ResetExecution
	err := db.Where("status = ?", StatusSuccess).
		Order("reset_date DESC").First(&execution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("无法查询最近的成功重置记录: %w", err)
	}
	return execution.ResetDate, nil
}

// HasSuccessForDate 判断某个重置日期是否已有成功的执行记录。
func HasSuccessForDate(db *gorm.DB, resetDate string) (bool, error) {
	var count int64
	err := db.Model(&ResetExecution{}).
		Where("reset_date = ? AND status = ?", resetDate, StatusSuccess).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("无法查询 %s 的重置记录: %w", resetDate, err)
	}
	return count > 0, nil
}

// Recent 按执行时间降序返回最近的执行记录，供诊断接口使用。
func Recent(db *gorm.DB, limit int) ([]ResetExecution, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var executions []ResetExecution
	err := db.Order("executed_at DESC").Limit(limit).Find(&executions).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取重置执行记录: %w", err)
	}
	return executions, nil
}
