package reset

import (
	"errors"
	"io"
	"net/http"

	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/dateutil"
	"github.com/gin-gonic/gin"
)

// ExecutionResponse 是执行日志的API形态
type ExecutionResponse struct {
	ID               uint   `json:"id"`
	ResetDate        string `json:"reset_date"`
	ExecutedAt       string `json:"executed_at"`
	UsersProcessed   int    `json:"users_processed"`
	UsersFailed      int    `json:"users_failed"`
	TotalDailyPoints int    `json:"total_daily_points"`
	TotalSteps       int    `json:"total_steps"`
	TotalNotes       int    `json:"total_notes"`
	Status           string `json:"status"`
	ErrorMessage     string `json:"error_message,omitempty"`
	ExecutionTimeMs  int64  `json:"execution_time_ms"`
}

func toResponse(e *ResetExecution) ExecutionResponse {
	return ExecutionResponse{
		ID:               e.ID,
		ResetDate:        e.ResetDate,
		ExecutedAt:       e.ExecutedAt.Format("2006-01-02T15:04:05Z07:00"),
		UsersProcessed:   e.UsersProcessed,
		UsersFailed:      e.UsersFailed,
		TotalDailyPoints: e.TotalDailyPoints,
		TotalSteps:       e.TotalSteps,
		TotalNotes:       e.TotalNotes,
		Status:           string(e.Status),
		ErrorMessage:     e.ErrorMessage,
		ExecutionTimeMs:  e.ExecutionTimeMs,
	}
}

// GetRecentExecutions 返回最近的重置执行记录
func GetRecentExecutions(c *gin.Context) {
	executions, err := Recent(database.DB, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法读取执行记录"})
		return
	}

	responses := make([]ExecutionResponse, 0, len(executions))
	for i := range executions {
		responses = append(responses, toResponse(&executions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"executions": responses})
}

// RunRequest 是手动触发重置的请求体。
// date缺省时归档昨天；force为true时忽略已成功记录重新归档。
type RunRequest struct {
	Date  string `json:"date"`
	Force bool   `json:"force"`
}

// TriggerRun 手动触发一次指定日期的重置归档
func TriggerRun(c *gin.Context) {
	var req RunRequest
	// 空请求体等价于“归档昨天”
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	resetDate := req.Date
	if resetDate == "" {
		resetDate = dateutil.AddDays(dateutil.Today(config.Cfg.Scheduler.Location()), -1)
	} else if !dateutil.IsValid(resetDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式必须为YYYY-MM-DD"})
		return
	}

	execution, err := Run(database.DB, resetDate, req.Force)
	switch {
	case errors.Is(err, ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "该日期已成功归档，如需重跑请设置force"})
		return
	case errors.Is(err, ErrRunInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "已有重置任务正在运行"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "重置执行失败"})
		return
	}

	c.JSON(http.StatusOK, toResponse(execution))
}
