package condition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/sandbox"
	"github.com/relayforge/relayforge/pkg/transform"
)

func evalContext() transform.Context {
	return transform.Context{
		OrgID:         "org-1",
		EventType:     "order.created",
		IntegrationID: "int-1",
		Now:           time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestEvaluateEmptyExpressionIsTrue(t *testing.T) {
	e := New(time.Second)

	ok, err := e.Evaluate(context.Background(), "", nil, evalContext())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateExpressions(t *testing.T) {
	e := New(time.Second)
	event := map[string]interface{}{
		"amount": float64(150),
		"status": "PAID",
		"tags":   []interface{}{},
	}

	tests := []struct {
		expr string
		want bool
	}{
		{`event.amount > 100`, true},
		{`event.amount > 1000`, false},
		{`event.status === "PAID"`, true},
		{`event.status === "PAID" && context.orgId === "org-1"`, true},
		{`event.missing`, false},      // undefined -> false
		{`null`, false},               // null -> false
		{`""`, false},                 // empty string -> false
		{`0`, false},                  // zero -> false
		{`event.tags`, false},         // empty array -> false
		{`event.status`, true},        // non-empty string -> true
		{`({ keep: true })`, true},    // non-empty object -> true
		{`event.amount - 150`, false}, // numeric zero -> false
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ok, err := e.Evaluate(context.Background(), tt.expr, event, evalContext())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok, "expr %q", tt.expr)
		})
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	e := New(time.Second)

	_, err := e.Evaluate(context.Background(), `event.amount >`, nil, evalContext())
	require.Error(t, err)
	assert.Equal(t, sandbox.KindSyntax, sandbox.KindOf(err))
}

func TestEvaluateRuntimeErrorSurfaces(t *testing.T) {
	e := New(time.Second)

	// Property access on undefined throws; must be reported, not skipped.
	_, err := e.Evaluate(context.Background(), `event.customer.tier === "gold"`,
		map[string]interface{}{}, evalContext())
	require.Error(t, err)
}

func TestEvaluateTimeout(t *testing.T) {
	e := New(50 * time.Millisecond)

	_, err := e.Evaluate(context.Background(),
		`(function () { while (true) {} })()`, nil, evalContext())
	require.Error(t, err)
	assert.Equal(t, sandbox.KindTimeout, sandbox.KindOf(err))
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.True(t, truthy(true))
	assert.False(t, truthy(false))
	assert.True(t, truthy(int64(5)))
	assert.False(t, truthy(int64(0)))
	assert.True(t, truthy(1.5))
	assert.False(t, truthy(0.0))
	assert.True(t, truthy("x"))
	assert.False(t, truthy(""))
	assert.True(t, truthy(map[string]interface{}{"a": 1}))
	assert.False(t, truthy(map[string]interface{}{}))
	assert.True(t, truthy([]interface{}{1}))
	assert.False(t, truthy([]interface{}{}))
}
