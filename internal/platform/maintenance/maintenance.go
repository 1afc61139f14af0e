package maintenance

import (
	"fmt"
	"sync"
	"time"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/lifecycle"
)

const purgeInterval = 6 * time.Hour // 定时清理频率

var purgeMutex sync.Mutex // 避免意外竞态

// StartAlertPurgeScheduler 启动一个后台Goroutine来定期清理过期告警
// 它接收一个lifecycle.Handle来管理其生命周期
func StartAlertPurgeScheduler(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("告警清理调度器已启动。")

	for {
		// 使用可中断的休眠来代替ticker。
		// 这使得整个循环可以在收到停机信号时立刻从休眠中唤醒并退出。
		if err := handle.Sleep(purgeInterval); err != nil {
			fmt.Printf("告警清理调度器: 休眠被中断，正在关闭...\n")
			return
		}

		if err := PurgeExpiredAlerts(); err != nil {
			fmt.Printf("告警清理调度器错误: %v\n", err)
		}
	}
}

// PurgeExpiredAlerts 执行一次过期告警清理，带有界重试
func PurgeExpiredAlerts() error {
	purgeMutex.Lock()
	defer purgeMutex.Unlock()

	const maxRetry = 3
	const delay = 50 * time.Millisecond

	var err error
	var purged int64
	for i := 0; i < maxRetry; i++ {
		purged, err = alert.PurgeOld(database.DB, config.Cfg.Alert.RetentionDays)
		if err == nil || !database.IsRetryableError(err) {
			break
		}
		time.Sleep(delay)
	}
	if err != nil {
		return err
	}
	if purged > 0 {
		fmt.Printf("告警清理调度器: 已清理 %d 条过期告警。\n", purged)
	}
	return nil
}
