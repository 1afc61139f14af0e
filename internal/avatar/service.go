package avatar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/stats"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreate 返回一个用户的形象记录，不存在时创建默认形象。
func GetOrCreate(db *gorm.DB, userID string) (*AvatarState, error) {
	var state AvatarState
	err := db.Where("user_id = ?", userID).First(&state).Error
	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("无法读取用户 %s 的形象记录: %w", userID, err)
	}

	state = AvatarState{
		UserID:        userID,
		SkinTone:      "default",
		HairStyle:     "short",
		HairColor:     "brown",
		ShirtStyle:    "tshirt",
		ShirtColor:    "green",
		VitalityLevel: MinVitalityLevel,
	}
	// 并发的首次读取可能同时创建，用OnConflict保证幂等
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&state).Error
	if err != nil {
		return nil, fmt.Errorf("无法创建用户 %s 的默认形象: %w", userID, err)
	}
	return &state, nil
}

// ReconcileVitality 执行“派生—对账”操作：
// 通过统计聚合重算当前的滚动周得分，派生活力等级，
// 与持久化的等级不一致时才回写。该值完全由台账决定，
// 并发对账采用last-writer-wins即可保证收敛。
// 返回对账后的形象记录。
func ReconcileVitality(db *gorm.DB, userID, today string) (*AvatarState, error) {
	state, err := GetOrCreate(db, userID)
	if err != nil {
		return nil, err
	}

	weeklyPoints, err := stats.RollingWeeklyPoints(db, userID, today)
	if err != nil {
		return nil, err
	}

	level := LevelForWeeklyPoints(weeklyPoints)
	if level != state.VitalityLevel {
		err = db.Model(&AvatarState{}).Where("user_id = ?", userID).
			Update("vitality_level", level).Error
		if err != nil {
			return nil, fmt.Errorf("无法回写用户 %s 的活力等级: %w", userID, err)
		}
		state.VitalityLevel = level
	}

	// 镜像到Redis加速后续读取；缓存失败不影响主流程
	mirrorVitality(userID, level)

	return state, nil
}

// mirrorVitality 把活力等级写入Redis镜像。
func mirrorVitality(userID string, level int) {
	if !database.RedisAvailable() {
		return
	}
	err := database.RDB.HSet(database.Ctx, VitalityKey, userID, strconv.Itoa(level)).Err()
	if err != nil {
		fmt.Printf("活力等级镜像写入失败 (用户 %s): %v\n", userID, err)
	}
}

// CachedVitality 从Redis镜像读取一个用户的活力等级。
// 镜像缺失或Redis不可用时返回 (0, false)，调用方应回退到完整对账。
func CachedVitality(userID string) (int, bool) {
	if !database.RedisAvailable() {
		return 0, false
	}
	value, err := database.RDB.HGet(database.Ctx, VitalityKey, userID).Result()
	if err != nil {
		return 0, false
	}
	level, err := strconv.Atoi(value)
	if err != nil || level < MinVitalityLevel || level > MaxVitalityLevel {
		return 0, false
	}
	return level, true
}

// UpdateAppearance 更新形象的外观属性。活力等级不受用户输入影响。
func UpdateAppearance(db *gorm.DB, state *AvatarState) error {
	err := db.Model(&AvatarState{}).Where("user_id = ?", state.UserID).
		Updates(map[string]interface{}{
			"skin_tone":   state.SkinTone,
			"hair_style":  state.HairStyle,
			"hair_color":  state.HairColor,
			"shirt_style": state.ShirtStyle,
			"shirt_color": state.ShirtColor,
		}).Error
	if err != nil {
		return fmt.Errorf("无法更新用户 %s 的形象: %w", state.UserID, err)
	}
	return nil
}
