package user

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色取值
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 定义了用户在SQLite数据库中的持久化模型。
type User struct {
	// UUID 是用户的主键，来自客户端Cookie。
	UUID string `gorm:"primarykey;type:varchar(36)"`

	// Email 和 FullName 由管理端维护，核心流程只读。
	Email    string `gorm:"type:varchar(255)"`
	FullName string `gorm:"type:varchar(255)"`

	// Role 区分普通用户和管理员
	Role string `gorm:"type:varchar(16);default:user"`

	// IsActive 决定该用户是否参与每日重置批处理
	IsActive bool `gorm:"default:true"`

	// FeaturesJSON 是管理端写入的松散JSON功能开关，
	// 读取时通过 ParseFeatures 转换为带默认值的强类型结构。
	FeaturesJSON string `gorm:"type:text"`

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
