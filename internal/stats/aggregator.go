package stats

import (
	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
)

// 聚合窗口的固定宽度
const (
	WeekDays  = 7
	MonthDays = 30
)

// DayEntry 是稠密日级序列中的一项。
// 窗口内没有台账行的日期会以全零项出现，序列长度只由窗口决定。
type DayEntry struct {
	Date       string `json:"date"`
	Training   int    `json:"training"`
	Nutrition  int    `json:"nutrition"`
	Movement   int    `json:"movement"`
	Meditation int    `json:"meditation"`
	Points     int    `json:"points"`
	Steps      int    `json:"steps"`
}

// HabitCompletion 是四个习惯类别的完成率（百分比，[0,100]）。
type HabitCompletion struct {
	Training   int `json:"training"`
	Nutrition  int `json:"nutrition"`
	Movement   int `json:"movement"`
	Meditation int `json:"meditation"`
}

// MonthlySummary 汇总了30天窗口内的习惯数据。
type MonthlySummary struct {
	Completion HabitCompletion
	// TotalPoints / TotalSteps 是窗口内的总量
	TotalPoints int
	TotalSteps  int
	// ActiveDays 是窗口内有台账行的天数，不固定为30：
	// 日均得分按活跃天数计算，避免惩罚新用户
	ActiveDays         int
	AverageDailyPoints float64
	AverageSteps       float64
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// clampRate 把一个百分比钳制到[0, 100]。
func clampRate(rate int) int {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// entryFor 把一行台账转换为序列项。
func entryFor(h *habit.HabitDay) DayEntry {
	return DayEntry{
		Date:       h.Day,
		Training:   boolToInt(h.Training),
		Nutrition:  boolToInt(h.Nutrition),
		Movement:   boolToInt(h.Movement),
		Meditation: boolToInt(h.Meditation),
		Points:     h.Points(),
		Steps:      h.Steps,
	}
}

// DenseSeries 把稀疏的台账行展开成从startDay开始、长度为days的稠密序列。
// 每个日期恰好一项，缺行日期补零。
func DenseSeries(rows []habit.HabitDay, startDay string, days int) []DayEntry {
	byDay := make(map[string]*habit.HabitDay, len(rows))
	for i := range rows {
		byDay[rows[i].Day] = &rows[i]
	}

	series := make([]DayEntry, 0, days)
	day := startDay
	for i := 0; i < days; i++ {
		if row, ok := byDay[day]; ok {
			series = append(series, entryFor(row))
		} else {
			series = append(series, DayEntry{Date: day})
		}
		day = dateutil.AddDays(day, 1)
	}
	return series
}

// DenseWeek 返回从weekStart开始的7天稠密序列。
// 无论底层有0~7行台账，结果长度永远是7。
func DenseWeek(rows []habit.HabitDay, weekStart string) []DayEntry {
	return DenseSeries(rows, weekStart, WeekDays)
}

// TotalPoints 求一段序列的得分总和。
func TotalPoints(series []DayEntry) int {
	total := 0
	for _, entry := range series {
		total += entry.Points
	}
	return total
}

// SummarizeMonth 汇总30天窗口。
// 完成率统一使用固定30天分母（四舍五入取整并钳制到[0,100]）；
// 日均值使用活跃天数分母。这两个口径在老代码中并存且互相矛盾，
// 此处固定下来：比率答“该月有多少天完成了”，均值答“活跃的日子平均表现如何”。
func SummarizeMonth(rows []habit.HabitDay) MonthlySummary {
	var summary MonthlySummary
	var trainingDays, nutritionDays, movementDays, meditationDays int

	for i := range rows {
		row := &rows[i]
		trainingDays += boolToInt(row.Training)
		nutritionDays += boolToInt(row.Nutrition)
		movementDays += boolToInt(row.Movement)
		meditationDays += boolToInt(row.Meditation)
		summary.TotalPoints += row.Points()
		summary.TotalSteps += row.Steps
	}

	rate := func(days int) int {
		return clampRate(int(float64(days)/float64(MonthDays)*100 + 0.5))
	}
	summary.Completion = HabitCompletion{
		Training:   rate(trainingDays),
		Nutrition:  rate(nutritionDays),
		Movement:   rate(movementDays),
		Meditation: rate(meditationDays),
	}

	summary.ActiveDays = len(rows)
	if summary.ActiveDays > 0 {
		summary.AverageDailyPoints = float64(summary.TotalPoints) / float64(summary.ActiveDays)
		summary.AverageSteps = float64(summary.TotalSteps) / float64(summary.ActiveDays)
	}

	return summary
}

// OverallCompletionRate 返回四个类别完成率的平均值，[0,100]。
func OverallCompletionRate(completion HabitCompletion) int {
	sum := completion.Training + completion.Nutrition + completion.Movement + completion.Meditation
	return clampRate(int(float64(sum)/4 + 0.5))
}

// CalendarWeekStart 返回包含today的日历周（周日起始）的第一天。
func CalendarWeekStart(today string) string {
	t, err := dateutil.Parse(today)
	if err != nil {
		return today
	}
	return dateutil.Format(t.AddDate(0, 0, -int(t.Weekday())))
}

// TrailingWindowStart 返回以today为末日、宽度为days的滑动窗口的第一天。
func TrailingWindowStart(today string, days int) string {
	return dateutil.AddDays(today, -(days - 1))
}
