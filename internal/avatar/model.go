package avatar

import (
	"time"

	"gorm.io/gorm"
)

// AvatarState 是每个用户的形象记录：外观属性加一个派生的活力等级。
// VitalityLevel 不是独立的事实来源：它完全由台账的周得分决定，
// 在每次读取时机会性地重算并回写（read-triggered write）。
type AvatarState struct {
	// UserID 是用户UUID，一个用户至多一行
	UserID string `gorm:"primarykey;type:varchar(36)"`

	// 外观属性，由用户自行编辑
	SkinTone   string `gorm:"type:varchar(32);default:default"`
	HairStyle  string `gorm:"type:varchar(32);default:short"`
	HairColor  string `gorm:"type:varchar(32);default:brown"`
	ShirtStyle string `gorm:"type:varchar(32);default:tshirt"`
	ShirtColor string `gorm:"type:varchar(32);default:green"`

	// VitalityLevel 是1~5的游戏化等级，只由核心逻辑写入
	VitalityLevel int `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
