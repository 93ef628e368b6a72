package transform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
)

func testContext() Context {
	return Context{
		OrgID:           "org-1",
		EventType:       "order.created",
		IntegrationID:   "int-1",
		IntegrationName: "orders-webhook",
		Now:             time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestApplyNilTransformationPassesThrough(t *testing.T) {
	tr := New(5 * time.Second)
	payload := map[string]interface{}{"a": 1}

	out, err := tr.Apply(context.Background(), nil, payload, testContext())
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestApplySimpleMappings(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode: config.TransformSimple,
		Mappings: []config.FieldMapping{
			{SourceField: "customer.name", TargetField: "recipient", Transform: "upper"},
			{SourceField: "note", TargetField: "memo", Transform: "trim"},
			{SourceField: "missing", TargetField: "fallback", Transform: "default", DefaultValue: "n/a"},
			{SourceField: "also_missing", TargetField: "omitted"},
			{SourceField: "amount", TargetField: "totals.amount"},
		},
		StaticFields: []config.StaticField{
			{Key: "source", Value: "relayforge"},
			{Key: "org", Value: "{{config.orgId}}"},
		},
	}

	payload := map[string]interface{}{
		"customer": map[string]interface{}{"name": "ada"},
		"note":     "  hi  ",
		"amount":   12.5,
	}

	out, err := tr.Apply(context.Background(), transformation, payload, testContext())
	require.NoError(t, err)

	body := out.(map[string]interface{})
	assert.Equal(t, "ADA", body["recipient"])
	assert.Equal(t, "hi", body["memo"])
	assert.Equal(t, "n/a", body["fallback"])
	assert.NotContains(t, body, "omitted")
	assert.Equal(t, 12.5, body["totals"].(map[string]interface{})["amount"])
	assert.Equal(t, "relayforge", body["source"])
	assert.Equal(t, "org-1", body["org"])
}

func TestApplySimpleDateTransform(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode: config.TransformSimple,
		Mappings: []config.FieldMapping{
			{SourceField: "created", TargetField: "created_day", Transform: "date"},
			{SourceField: "ts", TargetField: "ts_day", Transform: "date", DateFormat: "02/01/2006"},
		},
	}

	payload := map[string]interface{}{
		"created": "2026-03-15T10:30:00Z",
		"ts":      float64(1773558600000), // JSON numbers arrive as float64
	}

	out, err := tr.Apply(context.Background(), transformation, payload, testContext())
	require.NoError(t, err)

	body := out.(map[string]interface{})
	assert.Equal(t, "2026-03-15", body["created_day"])
	assert.Equal(t, "15/03/2026", body["ts_day"])
}

func TestApplySimpleUnknownFieldTransform(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode: config.TransformSimple,
		Mappings: []config.FieldMapping{
			{SourceField: "a", TargetField: "b", Transform: "reverse"},
		},
	}

	_, err := tr.Apply(context.Background(), transformation,
		map[string]interface{}{"a": "x"}, testContext())
	require.Error(t, err)

	var terr *ErrTransformation
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, err.Error(), "unknown transform")
}

func TestApplyScript(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode: config.TransformScript,
		Script: `
function transform(payload, context) {
    return {
        id: payload.order_id,
        org: context.orgId,
        total: payload.amount * 2
    };
}`,
	}

	payload := map[string]interface{}{"order_id": "o-9", "amount": float64(5)}

	out, err := tr.Apply(context.Background(), transformation, payload, testContext())
	require.NoError(t, err)

	body := out.(map[string]interface{})
	assert.Equal(t, "o-9", body["id"])
	assert.Equal(t, "org-1", body["org"])
	assert.Equal(t, int64(10), body["total"])
}

func TestApplyScriptReturningNothingFails(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode:   config.TransformScript,
		Script: `function transform(payload, context) {}`,
	}

	_, err := tr.Apply(context.Background(), transformation,
		map[string]interface{}{}, testContext())
	require.Error(t, err)

	var terr *ErrTransformation
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, err.Error(), "no value")
}

func TestApplyScriptSyntaxError(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{
		Mode:   config.TransformScript,
		Script: `function transform( {`,
	}

	_, err := tr.Apply(context.Background(), transformation,
		map[string]interface{}{}, testContext())

	var terr *ErrTransformation
	require.ErrorAs(t, err, &terr)
}

func TestApplyUnknownMode(t *testing.T) {
	tr := New(5 * time.Second)

	transformation := &config.Transformation{Mode: "FANCY"}

	_, err := tr.Apply(context.Background(), transformation,
		map[string]interface{}{}, testContext())

	var terr *ErrTransformation
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, err.Error(), "unknown transform mode")
}

func TestCompiledScriptIsCached(t *testing.T) {
	tr := New(5 * time.Second)
	src := `function transform(p, c) { return p; }`

	first, err := tr.compiled(src)
	require.NoError(t, err)
	second, err := tr.compiled(src)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
