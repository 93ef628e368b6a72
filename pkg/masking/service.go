// Package masking redacts secrets from request/response snapshots and logs.
package masking

import (
	"log/slog"
	"regexp"
	"strings"
)

// Redacted replaces secret values in snapshots and logs.
const Redacted = "***REDACTED***"

// sensitiveKeys is the case-insensitive substring filter applied to map keys
// and header names before anything is persisted or logged.
var sensitiveKeys = []string{
	"password", "secret", "token", "key", "authorization", "credential",
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns sweep secret-shaped values out of free-form strings.
var builtinPatterns = map[string]string{
	"bearer_token":  `(?i)bearer\s+[a-z0-9\-._~+/]+=*`,
	"basic_auth":    `(?i)basic\s+[a-z0-9+/]+=*`,
	"api_key_pair":  `(?i)(api[_-]?key|client[_-]?secret|access[_-]?token)["':\s=]+[^\s"',}]+`,
	"connection_pw": `(?i)(password|pwd)=[^;&\s]+`,
}

// Service applies data masking to payload snapshots and execution log
// content. Created once at startup; thread-safe and stateless aside from
// compiled patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service with eagerly compiled patterns.
// Invalid patterns are logged and skipped.
func NewService() *Service {
	s := &Service{}
	for name, raw := range builtinPatterns {
		compiled, err := regexp.Compile(raw)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: Redacted,
		})
	}
	return s
}

// SensitiveKey reports whether a map key or header name matches the
// case-insensitive secret filter.
func SensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// RedactString sweeps secret-shaped substrings out of free-form text.
func (s *Service) RedactString(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// RedactHeaders returns a copy of headers with sensitive values replaced.
func (s *Service) RedactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if SensitiveKey(k) {
			out[k] = Redacted
			continue
		}
		out[k] = s.RedactString(v)
	}
	return out
}

// RedactMap returns a deep copy of m with sensitive values replaced.
// Nested maps and slices are walked; scalar values under a sensitive key are
// replaced wholesale.
func (s *Service) RedactMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if SensitiveKey(k) {
			out[k] = Redacted
			continue
		}
		out[k] = s.redactValue(v)
	}
	return out
}

func (s *Service) redactValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return s.RedactMap(t)
	case []interface{}:
		cp := make([]interface{}, len(t))
		for i, e := range t {
			cp[i] = s.redactValue(e)
		}
		return cp
	case string:
		return s.RedactString(t)
	default:
		return v
	}
}
