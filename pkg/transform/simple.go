package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/relayforge/relayforge/pkg/config"
)

// applySimple evaluates an ordered SIMPLE mapping list plus static fields.
// A missing source with transform=default emits the default value; missing
// without a default omits the target key.
func applySimple(t *config.Transformation, payload map[string]interface{}, ctx Context) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(t.Mappings)+len(t.StaticFields))

	for _, m := range t.Mappings {
		value, found := lookupPath(payload, m.SourceField)
		if !found {
			if m.Transform == "default" {
				setPath(out, m.TargetField, SubstituteString(m.DefaultValue, ctx))
			}
			continue
		}

		transformed, err := applyFieldTransform(m, value)
		if err != nil {
			return nil, fmt.Errorf("mapping %s -> %s: %w", m.SourceField, m.TargetField, err)
		}
		setPath(out, m.TargetField, transformed)
	}

	for _, s := range t.StaticFields {
		setPath(out, s.Key, SubstituteString(s.Value, ctx))
	}

	return out, nil
}

func applyFieldTransform(m config.FieldMapping, value interface{}) (interface{}, error) {
	switch m.Transform {
	case "", "none", "default":
		return value, nil
	case "trim":
		return strings.TrimSpace(fmt.Sprint(value)), nil
	case "upper":
		return strings.ToUpper(fmt.Sprint(value)), nil
	case "lower":
		return strings.ToLower(fmt.Sprint(value)), nil
	case "date":
		layout := m.DateFormat
		if layout == "" {
			layout = "2006-01-02"
		}
		t, err := parseAnyTime(value)
		if err != nil {
			return nil, err
		}
		return t.UTC().Format(layout), nil
	default:
		return nil, fmt.Errorf("unknown transform %q", m.Transform)
	}
}

// parseAnyTime accepts RFC3339 strings, date-only strings, and Unix ms.
func parseAnyTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", v)
	case float64:
		return time.UnixMilli(int64(v)), nil
	case int64:
		return time.UnixMilli(v), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date value type %T", value)
	}
}

// lookupPath resolves a dotted field path in a nested payload.
func lookupPath(m map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var cur interface{} = m
	for _, p := range parts {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = obj[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// setPath writes a dotted field path, creating intermediate objects.
func setPath(m map[string]interface{}, path string, value interface{}) {
	parts := strings.Split(path, ".")
	for i := 0; i < len(parts)-1; i++ {
		next, ok := m[parts[i]].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[parts[i]] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
