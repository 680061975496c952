package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenshotKeyFormat(t *testing.T) {
	key := ScreenshotKey("42")
	assert.True(t, strings.HasPrefix(key, "sessions/42/"), "key was %s", key)
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestScreenshotKeyUnique(t *testing.T) {
	first := ScreenshotKey("42")
	second := ScreenshotKey("42")
	assert.NotEqual(t, first, second, "keys must not collide")
}

func TestScreenshotKeySanitizesID(t *testing.T) {
	key := ScreenshotKey("../../etc")
	assert.False(t, strings.Contains(key, ".."), "key was %s", key)
}

func TestSanitizeSessionID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain numeric", "42", "42"},
		{"alphanumeric", "TECH-001", "TECH-001"},
		{"path traversal", "../../etc/passwd", "etc_passwd"},
		{"slashes", "a/b\\c", "a_b_c"},
		{"spaces", "some id", "some_id"},
		{"empty", "", "unknown"},
		{"only dots", "..", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSessionID(tt.input))
		})
	}
}
