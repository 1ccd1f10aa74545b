package util

import "strings"

// MaskAPIKey masks an API key, keeping its type prefix (e.g. "sk_") and the
// last four characters so keys stay recognizable in output.
func MaskAPIKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return "***"
	}
	prefix := ""
	if i := strings.IndexByte(key, '_'); i > 0 && i < 8 {
		prefix = key[:i+1]
	}
	return prefix + "***" + key[len(key)-4:]
}
