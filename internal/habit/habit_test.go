package habit

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
	require.NoError(t, db.AutoMigrate(&HabitDay{}))
	return db
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, (&HabitDay{}).Points())
	assert.Equal(t, 1, (&HabitDay{Training: true}).Points())
	assert.Equal(t, 2, (&HabitDay{Nutrition: true, Meditation: true}).Points())
	assert.Equal(t, 4, (&HabitDay{Training: true, Nutrition: true, Movement: true, Meditation: true}).Points())
	// 步数不参与得分
	assert.Equal(t, 0, (&HabitDay{Steps: 99999}).Points())
}

func TestUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)

	first := &HabitDay{UserID: "u", Day: "2026-04-10", Training: true, Steps: 1000}
	require.NoError(t, Upsert(db, first))

	// 同键重写必须更新同一行而不是追加
	second := &HabitDay{UserID: "u", Day: "2026-04-10", Nutrition: true, Steps: 2000}
	require.NoError(t, Upsert(db, second))

	var count int64
	require.NoError(t, db.Model(&HabitDay{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	row, err := GetForDate(db, "u", "2026-04-10")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.Training)
	assert.True(t, row.Nutrition)
	assert.Equal(t, 2000, row.Steps)
}

func TestUpsertRejectsNegativeSteps(t *testing.T) {
	db := newTestDB(t)
	err := Upsert(db, &HabitDay{UserID: "u", Day: "2026-04-10", Steps: -5})
	assert.Error(t, err)
}

func TestGetForDateMissingRow(t *testing.T) {
	db := newTestDB(t)

	// 缺行返回(nil, nil)，由调用方决定语义
	row, err := GetForDate(db, "u", "2026-04-10")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestEnsureForDate(t *testing.T) {
	db := newTestDB(t)

	row, err := EnsureForDate(db, "u", "2026-04-10")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 0, row.Points())
	assert.Equal(t, 0, row.Steps)

	// 已有行时不覆盖
	require.NoError(t, Upsert(db, &HabitDay{UserID: "u", Day: "2026-04-10", Training: true}))
	row, err = EnsureForDate(db, "u", "2026-04-10")
	require.NoError(t, err)
	assert.True(t, row.Training)
}

func TestGetRangeOrderingAndIsolation(t *testing.T) {
	db := newTestDB(t)

	for _, day := range []string{"2026-04-03", "2026-04-01", "2026-04-02"} {
		require.NoError(t, Upsert(db, &HabitDay{UserID: "u", Day: day}))
	}
	require.NoError(t, Upsert(db, &HabitDay{UserID: "other", Day: "2026-04-02"}))

	rows, err := GetRange(db, "u", "2026-04-01", "2026-04-02")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-04-01", rows[0].Day)
	assert.Equal(t, "2026-04-02", rows[1].Day)
}
