package transform

import (
	"os"
	"regexp"
	"strconv"
	"time"
)

// tokenPattern matches {{namespace.name}} and {{namespace.name()}} tokens.
// Unknown tokens are left verbatim so tenant payloads containing literal
// braces survive substitution unchanged.
var tokenPattern = regexp.MustCompile(`\{\{\s*(config|date|env)\.([A-Za-z_][A-Za-z0-9_]*)(\(\))?\s*\}\}`)

// SubstituteString resolves supported template tokens in s.
func SubstituteString(s string, ctx Context) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := tokenPattern.FindStringSubmatch(match)
		ns, name := groups[1], groups[2]

		switch ns {
		case "config":
			if v, ok := configToken(name, ctx); ok {
				return v
			}
		case "date":
			if v, ok := dateToken(name, ctx.Now); ok {
				return v
			}
		case "env":
			if v, ok := os.LookupEnv(name); ok {
				return v
			}
		}
		return match
	})
}

// Substitute walks v recursively, substituting every string. Maps and slices
// are copied; other values pass through.
func Substitute(v interface{}, ctx Context) interface{} {
	switch t := v.(type) {
	case string:
		return SubstituteString(t, ctx)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = Substitute(e, ctx)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = Substitute(e, ctx)
		}
		return out
	default:
		return v
	}
}

// SubstituteHeaders substitutes every header value.
func SubstituteHeaders(headers map[string]string, ctx Context) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = SubstituteString(v, ctx)
	}
	return out
}

func configToken(name string, ctx Context) (string, bool) {
	switch name {
	case "orgId":
		return ctx.OrgID, true
	case "orgUnitId":
		return ctx.OrgUnitID, true
	case "integrationId":
		return ctx.IntegrationID, true
	case "integrationName":
		return ctx.IntegrationName, true
	}
	return "", false
}

func dateToken(name string, now time.Time) (string, bool) {
	day := now.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	switch name {
	case "today":
		return day.Format("2006-01-02"), true
	case "yesterday":
		return day.AddDate(0, 0, -1).Format("2006-01-02"), true
	case "todayStart":
		return start.Format(time.RFC3339), true
	case "todayEnd":
		return start.Add(24*time.Hour - time.Millisecond).Format(time.RFC3339), true
	case "now":
		return day.Format(time.RFC3339), true
	case "timestamp":
		return strconv.FormatInt(day.UnixMilli(), 10), true
	}
	return "", false
}
