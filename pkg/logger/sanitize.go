package logger

import "strings"

// sensitiveParams are query parameter names that must never reach the
// request log.
var sensitiveParams = []string{
	"token",
	"password",
	"otp",
	"code",
	"secret",
	"email",
}

// SanitizeQueryString reports whether a raw query string contains any
// sensitive parameter and therefore needs redaction before logging.
func SanitizeQueryString(rawQuery string) bool {
	if rawQuery == "" {
		return false
	}

	queryLower := strings.ToLower(rawQuery)
	for _, param := range sensitiveParams {
		if strings.Contains(queryLower, param+"=") {
			return true
		}
	}
	return false
}
