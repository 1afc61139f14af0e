package reset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMissingResetDatesOutage(t *testing.T) {
	// 停机3天：最后成功04-06，今天是04-10（昨天04-09）
	dates := MissingResetDates("2026-04-06", "2026-04-09", 7)
	assert.Equal(t, []string{"2026-04-07", "2026-04-08", "2026-04-09"}, dates)
}

func TestMissingResetDatesUpToDate(t *testing.T) {
	assert.Nil(t, MissingResetDates("2026-04-09", "2026-04-09", 7))
	// 时钟回拨等异常情况下也不会产生负区间
	assert.Nil(t, MissingResetDates("2026-04-12", "2026-04-09", 7))
}

func TestMissingResetDatesFirstRun(t *testing.T) {
	// 从未成功过时只补昨天，不做无界回溯
	assert.Equal(t, []string{"2026-04-09"}, MissingResetDates("", "2026-04-09", 7))
}

func TestMissingResetDatesBounded(t *testing.T) {
	// 长期停机只保留最近limit天，仍然从旧到新
	dates := MissingResetDates("2026-03-01", "2026-04-09", 3)
	assert.Equal(t, []string{"2026-04-07", "2026-04-08", "2026-04-09"}, dates)

	// limit为0表示不限制
	dates = MissingResetDates("2026-04-01", "2026-04-09", 0)
	assert.Len(t, dates, 8)
	assert.Equal(t, "2026-04-02", dates[0])
	assert.Equal(t, "2026-04-09", dates[7])
}

func TestNextTriggerDuration(t *testing.T) {
	loc := time.UTC

	// 触发点在今天晚些时候
	now := time.Date(2026, 4, 10, 22, 0, 0, 0, loc)
	assert.Equal(t, 95*time.Minute, NextTriggerDuration(now, 23, 35, loc))

	// 触发点已过，顺延到明天
	now = time.Date(2026, 4, 10, 23, 40, 0, 0, loc)
	assert.Equal(t, 23*time.Hour+55*time.Minute, NextTriggerDuration(now, 23, 35, loc))

	// 恰好在触发时刻，等一整天
	now = time.Date(2026, 4, 10, 0, 5, 0, 0, loc)
	assert.Equal(t, 24*time.Hour, NextTriggerDuration(now, 0, 5, loc))
}

func TestRunInProgressGuard(t *testing.T) {
	// 持锁状态下的任何触发都必须报告“正在运行”，而不是排队或重入
	locked := runMutex.TryLock()
	assert.True(t, locked)
	defer runMutex.Unlock()

	_, err := Run(nil, "2026-04-10", false)
	assert.ErrorIs(t, err, ErrRunInProgress)
}
