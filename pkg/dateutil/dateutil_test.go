package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("2026-01-31"))
	assert.False(t, IsValid("2026-1-31"))
	assert.False(t, IsValid("2026-01-32"))
	assert.False(t, IsValid("20260131"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-date"))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-01-02", AddDays("2026-01-01", 1))
	assert.Equal(t, "2025-12-31", AddDays("2026-01-01", -1))
	// 跨月和闰年边界
	assert.Equal(t, "2024-02-29", AddDays("2024-02-28", 1))
	assert.Equal(t, "2026-03-01", AddDays("2026-02-28", 1))
	// 非法输入原样返回
	assert.Equal(t, "garbage", AddDays("garbage", 5))
}

func TestRange(t *testing.T) {
	dates := Range("2026-02-27", "2026-03-02")
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, dates)

	assert.Equal(t, []string{"2026-05-01"}, Range("2026-05-01", "2026-05-01"))
	assert.Empty(t, Range("2026-05-02", "2026-05-01"))
}

func TestFormatParseRoundTrip(t *testing.T) {
	parsed, err := Parse("2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-29", Format(parsed))

	_, err = Parse("2026-13-01")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	// 不同的时区可能处于不同的日历日期，但都必须是合法日期
	assert.True(t, IsValid(Today(time.UTC)))
}
