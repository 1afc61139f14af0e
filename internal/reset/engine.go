package reset

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/history"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/note"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"gorm.io/gorm"
)

// 引擎级别的哨兵错误
var (
	// ErrAlreadyCompleted 表示该日期已有成功记录且未要求强制重跑
	ErrAlreadyCompleted = errors.New("该重置日期已成功执行过")
	// ErrRunInProgress 表示已有一次运行在进行中，本次调用被跳过
	ErrRunInProgress = errors.New("已有重置任务正在运行")
)

// runMutex 保证同一进程内至多只有一次重置在运行。
// 定时触发和手动触发共用这把锁；拿不到锁的一方直接跳过而不是排队。
var runMutex sync.Mutex

// 执行日志写入的有界重试参数，针对SQLite的busy/locked类暂时错误
const (
	maxExecutionWriteRetry = 3
	executionWriteDelay    = 50 * time.Millisecond
)

// Run 对单个重置日期执行一次完整的归档批处理。
//
// 流程：枚举活跃用户花名册；逐用户读取当日台账（缺行合成全零快照），
// 连同当日备忘一起以幂等UPSERT写入历史归档；单个用户的失败只计数、
// 不中断批处理；最后写入一行ResetExecution汇总。
//
// 返回写入的执行记录。只有在连执行记录都无法写入时才返回非nil错误。
func Run(db *gorm.DB, resetDate string, force bool) (*ResetExecution, error) {
	if !runMutex.TryLock() {
		return nil, ErrRunInProgress
	}
	defer runMutex.Unlock()

	if !force {
		done, err := HasSuccessForDate(db, resetDate)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, ErrAlreadyCompleted
		}
	}

	started := time.Now()
	execution := &ResetExecution{
		ResetDate:  resetDate,
		ExecutedAt: started,
	}

	// 1. 枚举花名册。这里失败是批级致命错误：没有花名册就没有批处理。
	roster, err := user.ActiveUserIDs(db)
	if err != nil {
		execution.Status = StatusFailed
		execution.ErrorMessage = err.Error()
		execution.ExecutionTimeMs = time.Since(started).Milliseconds()
		alert.Critical(db, fmt.Sprintf("重置 %s 失败：无法枚举用户", resetDate), err)
		if writeErr := writeExecution(db, execution); writeErr != nil {
			return nil, writeErr
		}
		return execution, nil
	}

	// 2. 逐用户归档，互相隔离失败
	for _, userID := range roster {
		archived, archiveErr := archiveUser(db, userID, resetDate)
		if archiveErr != nil {
			execution.UsersFailed++
			if execution.ErrorMessage == "" {
				execution.ErrorMessage = fmt.Sprintf("用户 %s: %v", userID, archiveErr)
			}
			fmt.Printf("重置 %s: 用户 %s 归档失败: %v\n", resetDate, userID, archiveErr)
			continue
		}
		execution.UsersProcessed++
		execution.TotalDailyPoints += archived.Points
		execution.TotalSteps += archived.Steps
		if archived.Note != "" {
			execution.TotalNotes++
		}
	}

	// 3. 定性本次运行
	switch {
	case execution.UsersFailed == 0:
		execution.Status = StatusSuccess
	case execution.UsersProcessed == 0:
		execution.Status = StatusFailed
	default:
		execution.Status = StatusPartial
	}
	execution.ExecutionTimeMs = time.Since(started).Milliseconds()

	// 4. 落盘执行日志
	if err := writeExecution(db, execution); err != nil {
		alert.Critical(db, fmt.Sprintf("重置 %s：执行日志写入失败", resetDate), err)
		return nil, err
	}

	switch execution.Status {
	case StatusPartial:
		alert.Log(db, alert.SeverityWarn,
			fmt.Sprintf("重置 %s 部分完成: %d 成功 / %d 失败", resetDate, execution.UsersProcessed, execution.UsersFailed),
			&alert.Context{Metadata: map[string]interface{}{"resetDate": resetDate}})
	case StatusFailed:
		alert.Critical(db, fmt.Sprintf("重置 %s 失败: %s", resetDate, execution.ErrorMessage), nil)
	default:
		fmt.Printf("重置 %s 成功: %d 个用户, %d 分, %d 步, 耗时 %dms\n",
			resetDate, execution.UsersProcessed, execution.TotalDailyPoints,
			execution.TotalSteps, execution.ExecutionTimeMs)
	}

	return execution, nil
}

// archiveUser 归档单个用户在指定日期的习惯状态。
// 台账缺行时合成全零快照：这个合成只存在于归档语义中，
// 台账本身的“缺行”永远不代表“全零”。
func archiveUser(db *gorm.DB, userID, resetDate string) (*history.HistoryRecord, error) {
	day, err := habit.GetForDate(db, userID, resetDate)
	if err != nil {
		return nil, err
	}

	record := &history.HistoryRecord{
		UserID: userID,
		Day:    resetDate,
	}
	if day != nil {
		if day.Steps < 0 {
			return nil, fmt.Errorf("台账数据非法：步数为负 (%d)", day.Steps)
		}
		record.Training = day.Training
		record.Nutrition = day.Nutrition
		record.Movement = day.Movement
		record.Meditation = day.Meditation
		record.Steps = day.Steps
		record.Points = day.Points()
	}

	content, err := note.ContentForDate(db, userID, resetDate)
	if err != nil {
		return nil, err
	}
	record.Note = content

	if err := history.Upsert(db, record); err != nil {
		return nil, err
	}
	return record, nil
}

// writeExecution 带有界重试地写入执行日志。
func writeExecution(db *gorm.DB, execution *ResetExecution) error {
	var err error
	for i := 0; i < maxExecutionWriteRetry; i++ {
		err = db.Create(execution).Error
		if err == nil || !database.IsRetryableError(err) {
			break
		}
		time.Sleep(executionWriteDelay)
	}
	if err != nil {
		return fmt.Errorf("无法写入重置执行日志: %w", err)
	}
	return nil
}
