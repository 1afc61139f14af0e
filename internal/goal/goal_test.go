package goal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Goal{}))
	return db
}

func TestNormalizeClamping(t *testing.T) {
	g := Goal{DailyStepsGoal: 100, WeeklyPointsGoal: 500}
	g.Normalize()
	assert.Equal(t, MinDailySteps, g.DailyStepsGoal)
	assert.Equal(t, MaxWeeklyPoints, g.WeeklyPointsGoal)

	g = Goal{DailyStepsGoal: 999999, WeeklyPointsGoal: 1}
	g.Normalize()
	assert.Equal(t, MaxDailySteps, g.DailyStepsGoal)
	assert.Equal(t, MinWeeklyPoints, g.WeeklyPointsGoal)

	// 零值回退到默认
	g = Goal{}
	g.Normalize()
	assert.Equal(t, DefaultDailySteps, g.DailyStepsGoal)
	assert.Equal(t, DefaultWeeklyPoints, g.WeeklyPointsGoal)

	// 合法区间内的值保持不变
	g = Goal{DailyStepsGoal: 12000, WeeklyPointsGoal: 21}
	g.Normalize()
	assert.Equal(t, 12000, g.DailyStepsGoal)
	assert.Equal(t, 21, g.WeeklyPointsGoal)
}

func TestGetForUserDefaults(t *testing.T) {
	db := newTestDB(t)

	// 没有配置行时返回默认值而不是错误
	g, err := GetForUser(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultDailySteps, g.DailyStepsGoal)
	assert.Equal(t, DefaultWeeklyPoints, g.WeeklyPointsGoal)

	// 默认值的读取不产生持久化行
	var count int64
	require.NoError(t, db.Model(&Goal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpsertRoundTrip(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Upsert(db, &Goal{UserID: "user-1", DailyStepsGoal: 10000, WeeklyPointsGoal: 20}))
	require.NoError(t, Upsert(db, &Goal{UserID: "user-1", DailyStepsGoal: 15000, WeeklyPointsGoal: 25}))

	var count int64
	require.NoError(t, db.Model(&Goal{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	g, err := GetForUser(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 15000, g.DailyStepsGoal)
	assert.Equal(t, 25, g.WeeklyPointsGoal)
}
