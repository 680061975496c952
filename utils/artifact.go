package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScreenshotKey generates a unique storage key for a session screenshot.
// Format: sessions/{technicianID}/{timestamp}_{uuid}.png
func ScreenshotKey(technicianID string) string {
	return fmt.Sprintf("sessions/%s/%d_%s.png",
		SanitizeSessionID(technicianID),
		time.Now().Unix(),
		uuid.NewString())
}

// SanitizeSessionID reduces an identifier to characters safe for use in
// filesystem paths and object keys. Anything outside [A-Za-z0-9_-] is
// replaced with '_', and an empty result becomes "unknown".
func SanitizeSessionID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "_")
	if sanitized == "" {
		return "unknown"
	}
	return sanitized
}
