package reset

import (
	"path/filepath"
	"testing"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/habit"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/history"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/note"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
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
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &habit.HabitDay{}, &note.DailyNote{},
		&history.HistoryRecord{}, &ResetExecution{}, &alert.Alert{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, uuid string, active bool) {
	t.Helper()
	require.NoError(t, db.Create(&user.User{UUID: uuid, Role: user.RoleUser, IsActive: active}).Error)
}

func TestRunArchivesRoster(t *testing.T) {
	db := newTestDB(t)
	const resetDate = "2026-04-10"

	createUser(t, db, "user-a", true)
	createUser(t, db, "user-b", true)
	createUser(t, db, "user-inactive", false)

	// user-a 有台账和备忘；user-b 完全没写过
	require.NoError(t, db.Create(&habit.HabitDay{
		UserID: "user-a", Day: resetDate,
		Training: true, Nutrition: true, Steps: 8000,
	}).Error)
	require.NoError(t, db.Create(&note.DailyNote{
		UserID: "user-a", Day: resetDate, Content: "今天状态不错",
	}).Error)

	execution, err := Run(db, resetDate, false)
	require.NoError(t, err)
	require.NotNil(t, execution)

	assert.Equal(t, StatusSuccess, execution.Status)
	assert.Equal(t, 2, execution.UsersProcessed)
	assert.Equal(t, 0, execution.UsersFailed)
	assert.Equal(t, 2, execution.TotalDailyPoints)
	assert.Equal(t, 8000, execution.TotalSteps)
	assert.Equal(t, 1, execution.TotalNotes)
	assert.GreaterOrEqual(t, execution.ExecutionTimeMs, int64(0))

	// user-a 的归档快照携带得分和备忘
	records, err := history.GetRange(db, "user-a", resetDate, resetDate)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Points)
	assert.Equal(t, "今天状态不错", records[0].Note)

	// user-b 缺行被合成为全零快照，归档密集无缺口
	records, err = history.GetRange(db, "user-b", resetDate, resetDate)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Points)
	assert.Equal(t, 0, records[0].Steps)
	assert.Empty(t, records[0].Note)

	// 非活跃用户不参与归档
	records, err = history.GetRange(db, "user-inactive", resetDate, resetDate)
	require.NoError(t, err)
	assert.Empty(t, records)

	// 台账原样保留，归档是附加性的
	row, err := habit.GetForDate(db, "user-a", resetDate)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.Training)
}

func TestRunIdempotent(t *testing.T) {
	db := newTestDB(t)
	const resetDate = "2026-04-10"
	createUser(t, db, "user-a", true)

	first, err := Run(db, resetDate, false)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, first.Status)

	// 同日期重跑被跳过
	_, err = Run(db, resetDate, false)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// force重跑允许，且归档行数不变
	forced, err := Run(db, resetDate, true)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, forced.Status)

	count, err := history.CountForDay(db, resetDate)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// 两次运行 = 两行执行日志
	executions, err := Recent(db, 10)
	require.NoError(t, err)
	assert.Len(t, executions, 2)
}

func TestRunPartialFailure(t *testing.T) {
	db := newTestDB(t)
	const resetDate = "2026-04-10"
	createUser(t, db, "user-good", true)
	createUser(t, db, "user-bad", true)

	// 绕过校验直接塞入非法台账行，模拟脏数据
	require.NoError(t, db.Create(&habit.HabitDay{
		UserID: "user-bad", Day: resetDate, Steps: -1,
	}).Error)

	execution, err := Run(db, resetDate, false)
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, execution.Status)
	assert.Equal(t, 1, execution.UsersProcessed)
	assert.Equal(t, 1, execution.UsersFailed)
	assert.Contains(t, execution.ErrorMessage, "user-bad")

	// 失败用户不产生归档行，成功用户正常归档
	count, err := history.CountForDay(db, resetDate)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// partial不算成功，下次运行不会被幂等跳过
	done, err := HasSuccessForDate(db, resetDate)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestRunRosterFailure(t *testing.T) {
	db := newTestDB(t)
	const resetDate = "2026-04-10"

	// 用户表不可用时批处理整体失败，但执行日志仍然落盘
	require.NoError(t, db.Migrator().DropTable(&user.User{}))

	execution, err := Run(db, resetDate, false)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, execution.Status)
	assert.Equal(t, 0, execution.UsersProcessed)
	assert.NotEmpty(t, execution.ErrorMessage)

	executions, err := Recent(db, 10)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, StatusFailed, executions[0].Status)
}

func TestRunEmptyRoster(t *testing.T) {
	db := newTestDB(t)

	execution, err := Run(db, "2026-04-10", false)
	require.NoError(t, err)

	// 空花名册是合法的空操作，不是错误
	assert.Equal(t, StatusSuccess, execution.Status)
	assert.Equal(t, 0, execution.UsersProcessed)
	assert.Equal(t, 0, execution.UsersFailed)
}

func TestLastSuccessfulResetDate(t *testing.T) {
	db := newTestDB(t)

	last, err := LastSuccessfulResetDate(db)
	require.NoError(t, err)
	assert.Empty(t, last)

	for _, date := range []string{"2026-04-08", "2026-04-10", "2026-04-09"} {
		_, err := Run(db, date, false)
		require.NoError(t, err)
	}
	// 再补一行failed，不能影响“最近成功日期”
	require.NoError(t, db.Create(&ResetExecution{
		ResetDate: "2026-04-11", Status: StatusFailed,
	}).Error)

	last, err = LastSuccessfulResetDate(db)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-10", last)
}
