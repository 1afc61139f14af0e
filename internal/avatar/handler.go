package avatar

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/alert"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/gin-gonic/gin"
)

// AvatarResponse 定义了形象接口的JSON响应结构
type AvatarResponse struct {
	SkinTone      string `json:"skin_tone"`
	HairStyle     string `json:"hair_style"`
	HairColor     string `json:"hair_color"`
	ShirtStyle    string `json:"shirt_style"`
	ShirtColor    string `json:"shirt_color"`
	VitalityLevel int    `json:"vitality_level"`
}

// UpdateAvatarRequest 定义了外观更新请求体，字段可部分缺省。
// 活力等级不可由客户端写入。
type UpdateAvatarRequest struct {
	SkinTone   *string `json:"skin_tone"`
	HairStyle  *string `json:"hair_style"`
	HairColor  *string `json:"hair_color"`
	ShirtStyle *string `json:"shirt_style"`
	ShirtColor *string `json:"shirt_color"`
}

func toResponse(state *AvatarState) AvatarResponse {
	return AvatarResponse{
		SkinTone:      state.SkinTone,
		HairStyle:     state.HairStyle,
		HairColor:     state.HairColor,
		ShirtStyle:    state.ShirtStyle,
		ShirtColor:    state.ShirtColor,
		VitalityLevel: state.VitalityLevel,
	}
}

// GetAvatar 返回当前用户的形象。
// 每次读取都会触发活力等级的重算与对账。
func GetAvatar(c *gin.Context) {
	userID := user.CurrentUserID(c)
	today := dateutil.Today(config.Cfg.Scheduler.Location())

	state, err := ReconcileVitality(database.DB, userID, today)
	if err != nil {
		alert.Log(database.DB, alert.SeverityError, "形象读取失败", &alert.Context{UserID: userID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取形象"})
		return
	}

	c.JSON(http.StatusOK, toResponse(state))
}

// UpdateAvatar 更新当前用户的外观属性
func UpdateAvatar(c *gin.Context) {
	userID := user.CurrentUserID(c)

	var body UpdateAvatarRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	state, err := GetOrCreate(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取形象"})
		return
	}

	if body.SkinTone != nil {
		state.SkinTone = *body.SkinTone
	}
	if body.HairStyle != nil {
		state.HairStyle = *body.HairStyle
	}
	if body.HairColor != nil {
		state.HairColor = *body.HairColor
	}
	if body.ShirtStyle != nil {
		state.ShirtStyle = *body.ShirtStyle
	}
	if body.ShirtColor != nil {
		state.ShirtColor = *body.ShirtColor
	}

	if err := UpdateAppearance(database.DB, state); err != nil {
		alert.Log(database.DB, alert.SeverityError, "形象更新失败", &alert.Context{UserID: userID, Err: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法更新形象"})
		return
	}

	c.JSON(http.StatusOK, toResponse(state))
}
