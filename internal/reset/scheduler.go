package reset

import (
	"fmt"
	"time"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/lifecycle"
)

// MissingResetDates 计算从上次成功到昨天为止尚未归档的日期列表。
// 列表按时间升序（最旧在前），超出limit时只保留最近的limit天。
// 从未成功过时只补昨天一天，不做无界回溯。
func MissingResetDates(lastSuccess, yesterday string, limit int) []string {
	if yesterday == "" {
		return nil
	}
	if lastSuccess == "" {
		return []string{yesterday}
	}
	if lastSuccess >= yesterday {
		return nil
	}

	dates := dateutil.Range(dateutil.AddDays(lastSuccess, 1), yesterday)
	if len(dates) == 0 {
		return []string{yesterday}
	}
	if limit > 0 && len(dates) > limit {
		dates = dates[len(dates)-limit:]
	}
	return dates
}

// NextTriggerDuration 计算从now到下一次触发时刻（指定时区的每日 hour:minute）的等待时长。
// 今天的触发点已过时顺延到明天。
func NextTriggerDuration(now time.Time, hour, minute int, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}

// StartScheduler 启动每日重置调度循环，直到生命周期管理器要求退出。
// 启动时先做一次补跑检查，之后每天在配置的触发时刻执行一次。
func StartScheduler(manager *lifecycle.Manager) error {
	handle, err := manager.NewServiceHandle("daily-reset-scheduler")
	if err != nil {
		return err
	}

	go runSchedulerLoop(handle)
	return nil
}

func runSchedulerLoop(handle *lifecycle.Handle) {
	defer handle.Close()

	cfg := config.Cfg.Scheduler
	loc := cfg.Location()

	fmt.Printf("每日重置调度器已启动 (触发时刻 %02d:%02d %s)\n", cfg.ResetHour, cfg.ResetMinute, loc)

	// 启动即补跑一次，覆盖宕机期间漏掉的日期
	runCatchUp(handle)

	for {
		wait := NextTriggerDuration(time.Now(), cfg.ResetHour, cfg.ResetMinute, loc)
		if err := handle.Sleep(wait); err != nil {
			fmt.Println("每日重置调度器已停止")
			return
		}
		runCatchUp(handle)
	}
}

// runCatchUp 执行一轮补跑：把所有缺失的日期按从旧到新依次归档。
// 任何一次运行中途收到停止信号时立即退出，让当前循环不再开启新运行。
func runCatchUp(handle *lifecycle.Handle) {
	db := database.DB
	cfg := config.Cfg.Scheduler
	loc := cfg.Location()

	yesterday := dateutil.AddDays(dateutil.Today(loc), -1)

	lastSuccess, err := LastSuccessfulResetDate(db)
	if err != nil {
		alert.Critical(db, "重置调度器：无法读取上次成功日期", err)
		return
	}

	dates := MissingResetDates(lastSuccess, yesterday, cfg.CatchUpDays)
	if len(dates) == 0 {
		return
	}
	if lastSuccess != "" {
		if missing := len(dateutil.Range(lastSuccess, yesterday)) - 1; missing > len(dates) {
			alert.Warn(db, fmt.Sprintf("重置补跑超出上限，只补最近 %d 天 (缺 %d 天)", len(dates), missing))
		}
	}

	for _, date := range dates {
		select {
		case <-handle.Done():
			return
		default:
		}

		execution, runErr := Run(db, date, false)
		switch {
		case runErr == ErrAlreadyCompleted, runErr == ErrRunInProgress:
			continue
		case runErr != nil:
			// Run内部已写告警，这里只停止本轮，下次触发再续
			return
		}
		if execution.Status == StatusFailed {
			return
		}
	}
}
