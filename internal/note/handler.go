package note

import (
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/user"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/gin-gonic/gin"
)

// NoteResponse 定义了备忘接口的JSON响应结构
type NoteResponse struct {
	Day     string `json:"day"`
	Content string `json:"content"`
}

// UpdateNoteRequest 定义了备忘写入请求体
type UpdateNoteRequest struct {
	Content string `json:"content"`
}

// GetNote 返回当前用户在指定日期的备忘，缺行时返回空内容
func GetNote(c *gin.Context) {
	userID := user.CurrentUserID(c)
	day := c.Param("date")
	if !dateutil.IsValid(day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式必须为YYYY-MM-DD"})
		return
	}

	content, err := ContentForDate(database.DB, userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取备忘"})
		return
	}

	c.JSON(http.StatusOK, NoteResponse{Day: day, Content: content})
}

// UpdateNote 写入当前用户在指定日期的备忘
func UpdateNote(c *gin.Context) {
	userID := user.CurrentUserID(c)
	day := c.Param("date")
	if !dateutil.IsValid(day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式必须为YYYY-MM-DD"})
		return
	}

	var body UpdateNoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	n := DailyNote{UserID: userID, Day: day, Content: body.Content}
	if err := Upsert(database.DB, &n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法保存备忘"})
		return
	}

	c.JSON(http.StatusOK, NoteResponse{Day: day, Content: body.Content})
}
