package avatar

import (
	"path/filepath"
	"testing"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
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
	require.NoError(t, db.AutoMigrate(&AvatarState{}, &habit.HabitDay{}))
	return db
}

func TestLevelForWeeklyPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{14, 2},
		{15, 3},
		{19, 3},
		{20, 4},
		{24, 4},
		{25, 5},
		{40, 5},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.level, LevelForWeeklyPoints(tc.points), "points=%d", tc.points)
	}
}

func TestGetOrCreateDefaults(t *testing.T) {
	db := newTestDB(t)

	state, err := GetOrCreate(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, MinVitalityLevel, state.VitalityLevel)
	assert.Equal(t, "default", state.SkinTone)

	// 第二次读取返回同一行而不是新建
	again, err := GetOrCreate(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, state.UserID, again.UserID)

	var count int64
	require.NoError(t, db.Model(&AvatarState{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReconcileVitality(t *testing.T) {
	db := newTestDB(t)
	const userID = "user-1"
	const today = "2026-04-10"

	// 最近7天内3个满分日 = 12分 → 2级
	for _, day := range []string{"2026-04-08", "2026-04-09", "2026-04-10"} {
		require.NoError(t, db.Create(&habit.HabitDay{
			UserID: userID, Day: day,
			Training: true, Nutrition: true, Movement: true, Meditation: true,
		}).Error)
	}

	state, err := ReconcileVitality(db, userID, today)
	require.NoError(t, err)
	assert.Equal(t, 2, state.VitalityLevel)

	// 等级必须被持久化
	var persisted AvatarState
	require.NoError(t, db.Where("user_id = ?", userID).First(&persisted).Error)
	assert.Equal(t, 2, persisted.VitalityLevel)

	// 窗口外的旧记录不影响等级
	require.NoError(t, db.Create(&habit.HabitDay{
		UserID: userID, Day: "2026-04-01",
		Training: true, Nutrition: true, Movement: true, Meditation: true,
	}).Error)
	state, err = ReconcileVitality(db, userID, today)
	require.NoError(t, err)
	assert.Equal(t, 2, state.VitalityLevel)

	// 窗口前移后得分掉出，等级随之下降
	state, err = ReconcileVitality(db, userID, "2026-04-20")
	require.NoError(t, err)
	assert.Equal(t, MinVitalityLevel, state.VitalityLevel)
}

func TestVitalityNotWritableThroughAppearance(t *testing.T) {
	db := newTestDB(t)

	state, err := GetOrCreate(db, "user-1")
	require.NoError(t, err)

	state.ShirtColor = "blue"
	state.VitalityLevel = 5
	require.NoError(t, UpdateAppearance(db, state))

	var persisted AvatarState
	require.NoError(t, db.Where("user_id = ?", "user-1").First(&persisted).Error)
	assert.Equal(t, "blue", persisted.ShirtColor)
	assert.Equal(t, MinVitalityLevel, persisted.VitalityLevel)
}
