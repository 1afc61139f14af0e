package avatar

// 定义与形象相关的Redis键名
const (
	// VitalityKey 是一个Hash，镜像每个用户当前的活力等级。
	// Field: 用户UUID
	// Value: 等级的十进制字符串
	// 它只是SQLite中AvatarState的只读加速镜像，不是事实来源。
	VitalityKey = "avatar:vitality"
)
