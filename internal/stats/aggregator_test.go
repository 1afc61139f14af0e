package stats

import (
	"testing"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func fullDay(userID, day string) habit.HabitDay {
	return habit.HabitDay{
		UserID: userID, Day: day,
		Training: true, Nutrition: true, Movement: true, Meditation: true,
		Steps: 10000,
	}
}

func TestDenseWeekAlwaysSeven(t *testing.T) {
	const weekStart = "2026-03-01"

	// 0行台账 → 7个全零项
	series := DenseWeek(nil, weekStart)
	assert.Len(t, series, WeekDays)
	for i, entry := range series {
		assert.Equal(t, 0, entry.Points)
		if i == 0 {
			assert.Equal(t, weekStart, entry.Date)
		}
	}
	assert.Equal(t, "2026-03-07", series[6].Date)

	// 2行台账 → 仍然7项，缺的日期补零
	rows := []habit.HabitDay{
		{UserID: "u", Day: "2026-03-02", Training: true, Nutrition: true},
		{UserID: "u", Day: "2026-03-05", Training: true, Nutrition: true, Movement: true, Meditation: true},
	}
	series = DenseWeek(rows, weekStart)
	assert.Len(t, series, WeekDays)
	assert.Equal(t, 2, series[1].Points)
	assert.Equal(t, 4, series[4].Points)
	assert.Equal(t, 6, TotalPoints(series))
	assert.Equal(t, 0, series[0].Points)
	assert.Equal(t, 0, series[6].Points)

	// 7行满分 → 总分28
	var fullRows []habit.HabitDay
	for i := 0; i < WeekDays; i++ {
		fullRows = append(fullRows, fullDay("u", DenseWeek(nil, weekStart)[i].Date))
	}
	assert.Equal(t, 28, TotalPoints(DenseWeek(fullRows, weekStart)))
}

func TestSummarizeMonthFixedDenominator(t *testing.T) {
	// 15个活跃日，全部完成四项
	var rows []habit.HabitDay
	day := "2026-03-01"
	for i := 0; i < 15; i++ {
		rows = append(rows, fullDay("u", day))
		day = nextDay(day)
	}

	summary := SummarizeMonth(rows)

	// 完成率用固定30天分母：15/30 = 50%
	assert.Equal(t, 50, summary.Completion.Training)
	assert.Equal(t, 50, summary.Completion.Nutrition)
	assert.Equal(t, 50, summary.Completion.Movement)
	assert.Equal(t, 50, summary.Completion.Meditation)

	// 均值用活跃天数分母：满分日平均4分
	assert.Equal(t, 15, summary.ActiveDays)
	assert.InDelta(t, 4.0, summary.AverageDailyPoints, 1e-9)
	assert.InDelta(t, 10000.0, summary.AverageSteps, 1e-9)
	assert.Equal(t, 60, summary.TotalPoints)
	assert.Equal(t, 150000, summary.TotalSteps)

	assert.Equal(t, 50, OverallCompletionRate(summary.Completion))
}

func TestSummarizeMonthEmpty(t *testing.T) {
	summary := SummarizeMonth(nil)
	assert.Equal(t, 0, summary.ActiveDays)
	assert.Zero(t, summary.AverageDailyPoints)
	assert.Zero(t, summary.AverageSteps)
	assert.Equal(t, 0, summary.Completion.Training)
	assert.Equal(t, 0, OverallCompletionRate(summary.Completion))
}

func TestCompletionRateClamped(t *testing.T) {
	// 31行（窗口查询宽度异常时）也不能超过100%
	var rows []habit.HabitDay
	day := "2026-03-01"
	for i := 0; i < 31; i++ {
		rows = append(rows, fullDay("u", day))
		day = nextDay(day)
	}
	summary := SummarizeMonth(rows)
	assert.Equal(t, 100, summary.Completion.Training)
	assert.Equal(t, 100, OverallCompletionRate(summary.Completion))
}

func TestCalendarWeekStart(t *testing.T) {
	// 2026-04-10是周五，所在周的周日是2026-04-05
	assert.Equal(t, "2026-04-05", CalendarWeekStart("2026-04-10"))
	// 周日当天就是周起点
	assert.Equal(t, "2026-04-05", CalendarWeekStart("2026-04-05"))
	// 周六是周的最后一天
	assert.Equal(t, "2026-04-05", CalendarWeekStart("2026-04-11"))
}

func TestTrailingWindowStart(t *testing.T) {
	assert.Equal(t, "2026-04-04", TrailingWindowStart("2026-04-10", 7))
	assert.Equal(t, "2026-03-12", TrailingWindowStart("2026-04-10", 30))
}

func nextDay(day string) string {
	return dateutil.AddDays(day, 1)
}
