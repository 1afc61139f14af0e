package alert

import (
	"net/http"
	"strconv"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// AlertResponse 是告警记录的API形态
type AlertResponse struct {
	ID        uint   `json:"id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Resolved  bool   `json:"resolved"`
	CreatedAt string `json:"created_at"`
}

// GetRecentAlerts 返回最近的系统告警，支持severity和limit查询参数
func GetRecentAlerts(c *gin.Context) {
	severity := Severity(c.Query("severity"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	alerts, err := Recent(database.DB, severity, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取告警记录"})
		return
	}

	responses := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, AlertResponse{
			ID:        a.ID,
			Severity:  string(a.Severity),
			Message:   a.Message,
			Details:   a.Details,
			Resolved:  a.Resolved,
			CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"alerts": responses})
}
