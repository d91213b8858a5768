package slogx

import (
	"log/slog"
	"strings"
)

const redactedValue = "***REDACTED***"

// Key substrings that mark an attribute as a credential. "token_date" is a
// timestamp and stays readable.
var sensitiveKeys = []string{"password", "secret", "token"}

var readableKeys = map[string]bool{"token_date": true}

// Redact is a slog ReplaceAttr hook that blanks non-empty credential values.
func Redact(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString || a.Value.String() == "" {
		return a
	}

	key := strings.ToLower(a.Key)
	if readableKeys[key] {
		return a
	}
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return slog.String(a.Key, redactedValue)
		}
	}
	return a
}
