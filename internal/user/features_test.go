package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeatures(t *testing.T) {
	// 空串和非法JSON都回退到全关默认值
	assert.Equal(t, DefaultFeatures(), ParseFeatures(""))
	assert.Equal(t, DefaultFeatures(), ParseFeatures("{not json"))

	features := ParseFeatures(`{"habits": true, "meditation": true}`)
	assert.True(t, features.Habits)
	assert.True(t, features.Meditation)
	assert.False(t, features.Training)
	assert.False(t, features.Nutrition)
	assert.False(t, features.ActiveBreaks)

	// 未知键被忽略
	features = ParseFeatures(`{"habits": true, "unknown_flag": true}`)
	assert.True(t, features.Habits)
}

func TestUserFeatures(t *testing.T) {
	u := User{FeaturesJSON: `{"training": true}`}
	assert.True(t, u.Features().Training)
	assert.False(t, u.Features().Habits)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0195e7a4-47a3-7d10-b2a4-5f2f6b1a0c3d"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
