package reset

import (
	"time"
)

// ExecutionStatus 表示一次重置执行的最终结果。
type ExecutionStatus string

const (
	// StatusSuccess 表示所有用户都归档成功
	StatusSuccess ExecutionStatus = "success"
	// StatusPartial 表示部分用户归档失败，但批处理完成了
	StatusPartial ExecutionStatus = "partial"
	// StatusFailed 表示批处理无法完成（例如无法枚举用户）
	StatusFailed ExecutionStatus = "failed"
)

// ResetExecution 是执行日志：每次重置运行写入一行，此后不再修改。
// 它是调度器幂等判断的依据（某日期已有success行则不再重跑），
// 也是运维诊断的审计轨迹。
type ResetExecution struct {
	ID uint `gorm:"primarykey"`

	// ResetDate 是被归档的日历日期，同一日期至多一行success
	ResetDate string `gorm:"type:varchar(10);not null;index"`

	// ExecutedAt 是本次运行的开始时刻
	ExecutedAt time.Time

	// 批处理的汇总计数
	UsersProcessed   int `gorm:"default:0"`
	UsersFailed      int `gorm:"default:0"`
	TotalDailyPoints int `gorm:"default:0"`
	TotalSteps       int `gorm:"default:0"`
	TotalNotes       int `gorm:"default:0"`

	Status ExecutionStatus `gorm:"type:varchar(16);not null"`

	// ErrorMessage 记录第一个遇到的错误，成功时为空
	ErrorMessage string `gorm:"type:text"`

	// ExecutionTimeMs 是从枚举用户到写入本行之前的耗时
	ExecutionTimeMs int64 `gorm:"default:0"`

	CreatedAt time.Time
}
