// Package dateutil 提供统一的“日历日期”表示。
// 整个系统以 YYYY-MM-DD 字符串作为日期键：习惯台账、历史归档和重置执行记录
// 都按这种字符串键控，避免time.Time的时刻/时区语义混入日期比较。
package dateutil

import (
	"fmt"
	"time"
)

// Layout 是全系统统一的日期格式
const Layout = "2006-01-02"

// Format 将一个时间点格式化为其所在日历日期。
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse 解析一个YYYY-MM-DD日期字符串。
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("无效的日期 '%s': %w", s, err)
	}
	return t, nil
}

// IsValid 判断一个字符串是否是合法的YYYY-MM-DD日期。
func IsValid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Today 返回指定时区下的当前日历日期。
func Today(loc *time.Location) string {
	return Format(time.Now().In(loc))
}

// AddDays 在一个日期字符串上加减天数。
// 输入非法时返回原串，调用方应事先用IsValid校验。
func AddDays(s string, days int) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return Format(t.AddDate(0, 0, days))
}

// Range 返回从start到end（均含）的连续日期序列。
// start晚于end时返回空切片。
func Range(start, end string) []string {
	startT, err := Parse(start)
	if err != nil {
		return nil
	}
	endT, err := Parse(end)
	if err != nil {
		return nil
	}

	var dates []string
	for !startT.After(endT) {
		dates = append(dates, Format(startT))
		startT = startT.AddDate(0, 0, 1)
	}
	return dates
}
