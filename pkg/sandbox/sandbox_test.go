package sandbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileT(t *testing.T, src string) *Script {
	t.Helper()
	script, err := Compile(t.Name(), src)
	require.NoError(t, err)
	return script
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := Compile("bad", `function f( {`)
	require.Error(t, err)
	assert.Equal(t, KindSyntax, KindOf(err))
}

func TestCallEntryFunction(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `
function decide(payload) {
    return { ok: payload.n > 1, n: payload.n };
}`)

	out, err := r.Call(context.Background(), script, "decide", nil,
		map[string]interface{}{"n": int64(3)})
	require.NoError(t, err)

	m := out.(map[string]interface{})
	assert.Equal(t, true, m["ok"])
	assert.Equal(t, int64(3), m["n"])
}

func TestCallCompletionValue(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `1 + 2`)

	out, err := r.Call(context.Background(), script, "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out)
}

func TestCallMissingEntryFunction(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `var x = 1;`)

	_, err := r.Call(context.Background(), script, "transform", nil)
	require.Error(t, err)
	assert.Equal(t, KindReference, KindOf(err))
}

func TestCallTimeout(t *testing.T) {
	r := NewRunner(50 * time.Millisecond)
	script := compileT(t, `function spin() { while (true) {} }`)

	start := time.Now()
	_, err := r.Call(context.Background(), script, "spin", nil)
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCallHonorsContextDeadline(t *testing.T) {
	r := NewRunner(time.Minute)
	script := compileT(t, `function spin() { while (true) {} }`)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Call(ctx, script, "spin", nil)
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestCallRuntimeError(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `function boom() { throw new Error("nope"); }`)

	_, err := r.Call(context.Background(), script, "boom", nil)
	require.Error(t, err)
	assert.Equal(t, KindRuntime, KindOf(err))
	assert.Contains(t, err.Error(), "nope")
}

func TestCallReferenceError(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `function f() { return definitelyNotDefined(); }`)

	_, err := r.Call(context.Background(), script, "f", nil)
	require.Error(t, err)
	assert.Equal(t, KindReference, KindOf(err))
}

func TestDynamicCodeGenerationDisabled(t *testing.T) {
	r := NewRunner(time.Second)

	for name, src := range map[string]string{
		"eval":        `function f() { return eval("1+1"); }`,
		"constructor": `function f() { return Function("return 1")(); }`,
	} {
		t.Run(name, func(t *testing.T) {
			script := compileT(t, src)
			_, err := r.Call(context.Background(), script, "f", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "dynamic code generation")
		})
	}
}

func TestFrozenPrototypes(t *testing.T) {
	r := NewRunner(time.Second)
	// Strict mode makes writes to frozen objects throw.
	script := compileT(t, `
function f() {
    "use strict";
    Object.prototype.polluted = true;
    return "reached";
}`)

	_, err := r.Call(context.Background(), script, "f", nil)
	require.Error(t, err)
	assert.Equal(t, KindRuntime, KindOf(err))
}

func TestInjectedGlobals(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `function f() { return tenant + "/" + region; }`)

	out, err := r.Call(context.Background(), script, "f",
		map[string]interface{}{"tenant": "org-1", "region": "eu"})
	require.NoError(t, err)
	assert.Equal(t, "org-1/eu", out)
}

func TestHelpers(t *testing.T) {
	r := NewRunner(time.Second)

	tests := []struct {
		name string
		src  string
		want interface{}
	}{
		{
			name: "formatDate",
			src:  `formatDate(1773570600000, "2006-01-02")`,
			want: "2026-03-15",
		},
		{
			name: "addDays round trip",
			src:  `formatDate(addDays(parseDate("2026-03-15T00:00:00Z", ""), 2), "2006-01-02")`,
			want: "2026-03-17",
		},
		{
			name: "startOfDay",
			src:  `formatDate(startOfDay(1773570600000), "")`,
			want: "2026-03-15T00:00:00Z",
		},
		{
			name: "base64 round trip",
			src:  `base64Decode(base64Encode("relay"))`,
			want: "relay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := compileT(t, tt.src)
			out, err := r.Call(context.Background(), script, "", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGenerateUUIDUnique(t *testing.T) {
	r := NewRunner(time.Second)
	script := compileT(t, `generateUUID() + " " + generateUUID()`)

	out, err := r.Call(context.Background(), script, "", nil)
	require.NoError(t, err)

	s := out.(string)
	require.Len(t, s, 73)
	assert.NotEqual(t, s[:36], s[37:])
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindRuntime, KindOf(errors.New("plain")))
}
