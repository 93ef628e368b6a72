// Package condition gates integrations and actions on boolean expressions
// evaluated in the script sandbox.
package condition

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/relayforge/relayforge/pkg/sandbox"
	"github.com/relayforge/relayforge/pkg/transform"
)

// Evaluator runs condition expressions against {event, context}.
// Null, undefined, and empty results evaluate to false.
type Evaluator struct {
	runner *sandbox.Runner

	mu      sync.RWMutex
	scripts map[string]*sandbox.Script
}

// New creates a condition evaluator with the given execution cap.
func New(timeout time.Duration) *Evaluator {
	return &Evaluator{
		runner:  sandbox.NewRunner(timeout),
		scripts: make(map[string]*sandbox.Script),
	}
}

// Evaluate returns the truthiness of expr. An empty expression is true (no
// gate configured). Evaluation errors are returned so callers can record a
// failed step rather than silently skipping.
func (e *Evaluator) Evaluate(ctx context.Context, expr string, event map[string]interface{}, tctx transform.Context) (bool, error) {
	if expr == "" {
		return true, nil
	}

	script, err := e.compiled(expr)
	if err != nil {
		return false, err
	}

	result, err := e.runner.Call(ctx, script, "", map[string]interface{}{
		"event":   event,
		"context": tctx.ScriptContext(),
	})
	if err != nil {
		return false, err
	}

	return truthy(result), nil
}

// truthy applies the null/undefined/empty → false rule.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int64:
		return t != 0
	case float64:
		return t != 0
	case map[string]interface{}:
		return len(t) > 0
	case []interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func (e *Evaluator) compiled(expr string) (*sandbox.Script, error) {
	sum := sha256.Sum256([]byte(expr))
	key := hex.EncodeToString(sum[:8])

	e.mu.RLock()
	script, ok := e.scripts[key]
	e.mu.RUnlock()
	if ok {
		return script, nil
	}

	// Wrap the bare expression so object literals and comparisons evaluate
	// as the completion value.
	script, err := sandbox.Compile("condition-"+key, fmt.Sprintf("(%s)", expr))
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.scripts[key] = script
	e.mu.Unlock()
	return script, nil
}
