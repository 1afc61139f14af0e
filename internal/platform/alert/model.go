package alert

import "gorm.io/gorm"

// Severity 表示一条系统告警的严重级别。
type Severity string

const (
	SeverityDebug    Severity = "debug"
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Alert 定义了持久化在数据库中的系统告警记录。
// 它是运维诊断页面的数据来源，同时充当结构化日志的落地表。
type Alert struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Severity 是告警级别，例如 "warn"、"critical"
	Severity Severity `gorm:"index;not null;type:varchar(16)"`

	// Message 是告警的简短描述
	Message string `gorm:"not null"`

	// Details 是JSON编码的附加上下文（用户ID、错误信息、任意元数据）
	Details string `gorm:"type:text"`

	// Resolved 标记该告警是否已被运维人员处理
	Resolved bool `gorm:"default:false"`
}
