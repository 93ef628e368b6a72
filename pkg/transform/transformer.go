package transform

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/sandbox"
)

// ErrTransformation wraps any transformation failure so callers can classify
// it without string matching.
type ErrTransformation struct {
	Err error
}

// Error returns the formatted message.
func (e *ErrTransformation) Error() string {
	return fmt.Sprintf("transformation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ErrTransformation) Unwrap() error {
	return e.Err
}

// Transformer evaluates integration transformations. Compiled scripts are
// cached by source hash; safe for concurrent use.
type Transformer struct {
	runner *sandbox.Runner

	mu      sync.RWMutex
	scripts map[string]*sandbox.Script
}

// New creates a transformer with the given script execution cap.
func New(scriptTimeout time.Duration) *Transformer {
	return &Transformer{
		runner:  sandbox.NewRunner(scriptTimeout),
		scripts: make(map[string]*sandbox.Script),
	}
}

// Apply produces the outbound body for one integration or action.
// A nil transformation passes the payload through untouched.
func (t *Transformer) Apply(ctx context.Context, tr *config.Transformation, payload map[string]interface{}, tctx Context) (interface{}, error) {
	if tr == nil {
		return payload, nil
	}

	switch tr.Mode {
	case config.TransformSimple:
		out, err := applySimple(tr, payload, tctx)
		if err != nil {
			return nil, &ErrTransformation{Err: err}
		}
		return out, nil

	case config.TransformScript:
		script, err := t.compiled(tr.Script)
		if err != nil {
			return nil, &ErrTransformation{Err: err}
		}
		result, err := t.runner.Call(ctx, script, "transform",
			map[string]interface{}{}, payload, tctx.ScriptContext())
		if err != nil {
			return nil, &ErrTransformation{Err: err}
		}
		if result == nil {
			return nil, &ErrTransformation{Err: fmt.Errorf("script returned no value")}
		}
		return result, nil

	default:
		return nil, &ErrTransformation{Err: fmt.Errorf("unknown transform mode %q", tr.Mode)}
	}
}

// compiled returns the cached compiled script, compiling on first use.
func (t *Transformer) compiled(src string) (*sandbox.Script, error) {
	sum := sha256.Sum256([]byte(src))
	key := hex.EncodeToString(sum[:8])

	t.mu.RLock()
	script, ok := t.scripts[key]
	t.mu.RUnlock()
	if ok {
		return script, nil
	}

	script, err := sandbox.Compile("transform-"+key, src)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.scripts[key] = script
	t.mu.Unlock()
	return script, nil
}
