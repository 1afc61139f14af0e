package user

import "encoding/json"

// Features 是用户功能开关的强类型表示。
// 数据库中存储的是松散的JSON（历史遗留），这里为每个已知键提供显式默认值，
// 未知键被忽略，非法JSON整体回退到默认值。
type Features struct {
	Habits       bool `json:"habits"`
	Training     bool `json:"training"`
	Nutrition    bool `json:"nutrition"`
	Meditation   bool `json:"meditation"`
	ActiveBreaks bool `json:"active_breaks"`
}

// DefaultFeatures 返回所有功能开关的默认状态。
// 与管理端的约定一致：未显式开通的功能一律关闭。
func DefaultFeatures() Features {
	return Features{
		Habits:       false,
		Training:     false,
		Nutrition:    false,
		Meditation:   false,
		ActiveBreaks: false,
	}
}

// ParseFeatures 将数据库中的JSON开关解析为Features。
func ParseFeatures(featuresJSON string) Features {
	features := DefaultFeatures()
	if featuresJSON == "" {
		return features
	}
	if err := json.Unmarshal([]byte(featuresJSON), &features); err != nil {
		// 非法JSON不应该让读取路径失败，回退到默认值
		return DefaultFeatures()
	}
	return features
}

// Features 返回该用户解析后的功能开关。
func (u *User) Features() Features {
	return ParseFeatures(u.FeaturesJSON)
}
