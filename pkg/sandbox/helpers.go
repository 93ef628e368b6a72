package sandbox

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/google/uuid"
)

// bindHelpers installs the read-only date/encoding helpers available to
// transformation and scheduling scripts.
func bindHelpers(vm *goja.Runtime) {
	_ = vm.Set("now", func() int64 {
		return time.Now().UnixMilli()
	})
	_ = vm.Set("parseDate", func(value, layout string) (int64, error) {
		if layout == "" {
			layout = time.RFC3339
		}
		t, err := time.Parse(layout, value)
		if err != nil {
			return 0, fmt.Errorf("parseDate: %w", err)
		}
		return t.UnixMilli(), nil
	})
	_ = vm.Set("formatDate", func(millis int64, layout string) string {
		if layout == "" {
			layout = time.RFC3339
		}
		return time.UnixMilli(millis).UTC().Format(layout)
	})
	_ = vm.Set("addDays", func(millis int64, days int) int64 {
		return time.UnixMilli(millis).AddDate(0, 0, days).UnixMilli()
	})
	_ = vm.Set("addHours", func(millis int64, hours int) int64 {
		return time.UnixMilli(millis).Add(time.Duration(hours) * time.Hour).UnixMilli()
	})
	_ = vm.Set("addMinutes", func(millis int64, minutes int) int64 {
		return time.UnixMilli(millis).Add(time.Duration(minutes) * time.Minute).UnixMilli()
	})
	_ = vm.Set("startOfDay", func(millis int64) int64 {
		t := time.UnixMilli(millis).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
	})
	_ = vm.Set("endOfDay", func(millis int64) int64 {
		t := time.UnixMilli(millis).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
	})
	_ = vm.Set("toTimestamp", func(value string) (int64, error) {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return 0, fmt.Errorf("toTimestamp: %w", err)
		}
		return t.UnixMilli(), nil
	})
	_ = vm.Set("base64Encode", func(value string) string {
		return base64.StdEncoding.EncodeToString([]byte(value))
	})
	_ = vm.Set("base64Decode", func(value string) (string, error) {
		b, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return "", fmt.Errorf("base64Decode: %w", err)
		}
		return string(b), nil
	})
	_ = vm.Set("generateUUID", func() string {
		return uuid.NewString()
	})
}

// bindConsole routes script console output to the structured logger.
func bindConsole(vm *goja.Runtime, logger *slog.Logger) {
	stringify := func(call goja.FunctionCall) string {
		parts := make([]string, len(call.Arguments))
		for i, a := range call.Arguments {
			parts[i] = a.String()
		}
		return strings.Join(parts, " ")
	}

	console := vm.NewObject()
	_ = console.Set("log", func(call goja.FunctionCall) goja.Value {
		logger.Info("script console", "message", stringify(call))
		return goja.Undefined()
	})
	_ = console.Set("warn", func(call goja.FunctionCall) goja.Value {
		logger.Warn("script console", "message", stringify(call))
		return goja.Undefined()
	})
	_ = console.Set("error", func(call goja.FunctionCall) goja.Value {
		logger.Error("script console", "message", stringify(call))
		return goja.Undefined()
	})
	_ = vm.Set("console", console)
}
