package stats

import (
	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"gorm.io/gorm"
)

// WeeklyEntry 是统计响应中的周序列项，只携带日期和得分。
type WeeklyEntry struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// UserStats 是统计接口的完整响应负载。
type UserStats struct {
	WeeklyPoints       int             `json:"weekly_points"`
	AverageDailyPoints float64         `json:"average_daily_points"`
	TotalActiveDays    int             `json:"total_active_days"`
	AverageSteps       float64         `json:"average_steps"`
	CompletionRate     int             `json:"completion_rate"`
	WeeklyData         []WeeklyEntry   `json:"weekly_data"`
	MonthlyData        []DayEntry      `json:"monthly_data"`
	HabitCompletion    HabitCompletion `json:"habit_completion"`
}

// BuildUserStats 以today为基准，组装一个用户的周/月统计。
// 周序列使用周日起始的日历周；月口径使用30天滑动窗口。
// 只读台账，不触碰归档。
func BuildUserStats(db *gorm.DB, userID, today string) (*UserStats, error) {
	weekStart := CalendarWeekStart(today)
	monthStart := TrailingWindowStart(today, MonthDays)

	weekRows, err := habit.GetRange(db, userID, weekStart, dateutil.AddDays(weekStart, WeekDays-1))
	if err != nil {
		return nil, err
	}
	monthRows, err := habit.GetRange(db, userID, monthStart, today)
	if err != nil {
		return nil, err
	}

	weekSeries := DenseWeek(weekRows, weekStart)
	weeklyData := make([]WeeklyEntry, 0, len(weekSeries))
	for _, entry := range weekSeries {
		weeklyData = append(weeklyData, WeeklyEntry{Date: entry.Date, Points: entry.Points})
	}

	// 月序列只包含活跃天（有台账行的日期），与老接口保持一致
	monthlyData := make([]DayEntry, 0, len(monthRows))
	for i := range monthRows {
		monthlyData = append(monthlyData, entryFor(&monthRows[i]))
	}

	summary := SummarizeMonth(monthRows)

	return &UserStats{
		WeeklyPoints:       TotalPoints(weekSeries),
		AverageDailyPoints: summary.AverageDailyPoints,
		TotalActiveDays:    summary.ActiveDays,
		AverageSteps:       summary.AverageSteps,
		CompletionRate:     OverallCompletionRate(summary.Completion),
		WeeklyData:         weeklyData,
		MonthlyData:        monthlyData,
		HabitCompletion:    summary.Completion,
	}, nil
}

// RollingWeeklyPoints 返回以today为末日的最近7天得分总和。
// 活力等级的输入使用这个滑动窗口，而不是日历周。
func RollingWeeklyPoints(db *gorm.DB, userID, today string) (int, error) {
	weekStart := TrailingWindowStart(today, WeekDays)
	rows, err := habit.GetRange(db, userID, weekStart, today)
	if err != nil {
		return 0, err
	}
	return TotalPoints(DenseWeek(rows, weekStart)), nil
}
