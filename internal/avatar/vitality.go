package avatar

// 活力等级的取值范围
const (
	MinVitalityLevel = 1
	MaxVitalityLevel = 5
)

// LevelForWeeklyPoints 把滚动周得分映射为1~5的活力等级。
// 阈值是闭下界：24分是4级，25分是5级。
func LevelForWeeklyPoints(weeklyPoints int) int {
	switch {
	case weeklyPoints >= 25:
		return 5
	case weeklyPoints >= 20:
		return 4
	case weeklyPoints >= 15:
		return 3
	case weeklyPoints >= 10:
		return 2
	default:
		return MinVitalityLevel
	}
}
