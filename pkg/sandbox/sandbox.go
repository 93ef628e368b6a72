// Package sandbox executes untrusted tenant scripts in a hardened, time-capped
// JavaScript runtime. Scripts are pure (value in, value out): the runtime has
// no network, filesystem, or process access, and dynamic code generation is
// disabled.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dop251/goja"
)

// ErrorKind distinguishes sandbox failure modes for execution logs.
type ErrorKind string

// Sandbox error kinds.
const (
	KindTimeout   ErrorKind = "SCRIPT_TIMEOUT"
	KindSyntax    ErrorKind = "SCRIPT_SYNTAX_ERROR"
	KindReference ErrorKind = "SCRIPT_REFERENCE_ERROR"
	KindRuntime   ErrorKind = "SCRIPT_RUNTIME_ERROR"
)

// Error is a classified sandbox failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error returns the formatted message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind, defaulting to KindRuntime.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindRuntime
}

// hardenPrelude freezes the prototypes of built-in containers and primitives
// so scripts cannot poison them for later globals, and disables dynamic code
// generation.
const hardenPrelude = `
"use strict";
(function () {
    var frozen = [Object.prototype, Array.prototype, String.prototype,
        Number.prototype, Boolean.prototype, Date.prototype, RegExp.prototype,
        Function.prototype, Math, JSON];
    for (var i = 0; i < frozen.length; i++) {
        Object.freeze(frozen[i]);
    }
})();
`

// Script is a compiled, reusable program. Compile once per integration;
// Runner creates a fresh runtime per execution, so a Script is safe for
// concurrent use.
type Script struct {
	name string
	prog *goja.Program
}

// Compile parses and compiles src. Syntax problems surface as KindSyntax.
func Compile(name, src string) (*Script, error) {
	prog, err := goja.Compile(name, src, true)
	if err != nil {
		return nil, &Error{Kind: KindSyntax, Err: err}
	}
	return &Script{name: name, prog: prog}, nil
}

// Runner executes compiled scripts with a hard interrupt-based time cap.
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewRunner creates a runner with the given execution cap.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{
		timeout: timeout,
		logger:  slog.Default().With("component", "sandbox"),
	}
}

// Call runs the script, then invokes the named entry function with args,
// returning the exported result. An empty entryFn returns the script's
// completion value instead.
func (r *Runner) Call(ctx context.Context, script *Script, entryFn string, globals map[string]interface{}, args ...interface{}) (result interface{}, err error) {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.UncapFieldNameMapper())

	deadline := r.timeout
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until < deadline {
			deadline = until
		}
	}
	timer := time.AfterFunc(deadline, func() {
		vm.Interrupt("script execution time cap exceeded")
	})
	defer timer.Stop()

	// Interrupt panics surface through RunProgram/callable errors, but a
	// misbehaving native helper could still panic; keep the worker alive.
	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{Kind: KindRuntime, Err: fmt.Errorf("script panic: %v", rec)}
		}
	}()

	if err := r.setupGlobals(vm, globals); err != nil {
		return nil, err
	}

	if _, err := vm.RunString(hardenPrelude); err != nil {
		return nil, &Error{Kind: KindRuntime, Err: fmt.Errorf("harden prelude: %w", err)}
	}

	completion, err := vm.RunProgram(script.prog)
	if err != nil {
		return nil, classify(err)
	}

	if entryFn == "" {
		return export(completion), nil
	}

	fn, ok := goja.AssertFunction(vm.Get(entryFn))
	if !ok {
		return nil, &Error{Kind: KindReference, Err: fmt.Errorf("script does not define function %q", entryFn)}
	}

	jsArgs := make([]goja.Value, len(args))
	for i, a := range args {
		jsArgs[i] = vm.ToValue(a)
	}

	out, err := fn(goja.Undefined(), jsArgs...)
	if err != nil {
		return nil, classify(err)
	}

	return export(out), nil
}

// setupGlobals binds injected values, helpers, and the sanitized console,
// and denies dynamic code generation.
func (r *Runner) setupGlobals(vm *goja.Runtime, globals map[string]interface{}) error {
	for name, value := range globals {
		if err := vm.Set(name, value); err != nil {
			return &Error{Kind: KindRuntime, Err: fmt.Errorf("binding global %s: %w", name, err)}
		}
	}

	bindHelpers(vm)
	bindConsole(vm, r.logger)

	// eval and the Function constructor are the only dynamic-code paths.
	denied := func(goja.FunctionCall) goja.Value {
		panic(vm.NewTypeError("dynamic code generation is disabled"))
	}
	if err := vm.Set("eval", denied); err != nil {
		return &Error{Kind: KindRuntime, Err: err}
	}
	if err := vm.Set("Function", denied); err != nil {
		return &Error{Kind: KindRuntime, Err: err}
	}

	// Timers fire synchronously; scripts are pure and must not rely on
	// wall-clock delays.
	setTimeout := func(call goja.FunctionCall) goja.Value {
		if fn, ok := goja.AssertFunction(call.Argument(0)); ok {
			if _, err := fn(goja.Undefined()); err != nil {
				panic(err)
			}
		}
		return goja.Undefined()
	}
	if err := vm.Set("setTimeout", setTimeout); err != nil {
		return &Error{Kind: KindRuntime, Err: err}
	}
	if err := vm.Set("setInterval", denied); err != nil {
		return &Error{Kind: KindRuntime, Err: err}
	}

	return nil
}

// classify maps a goja error to a sandbox error kind.
func classify(err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return &Error{Kind: KindTimeout, Err: err}
	}

	var exception *goja.Exception
	if errors.As(err, &exception) {
		if obj, ok := exception.Value().(*goja.Object); ok {
			if name := obj.Get("name"); name != nil && name.String() == "ReferenceError" {
				return &Error{Kind: KindReference, Err: err}
			}
		}
		return &Error{Kind: KindRuntime, Err: err}
	}

	return &Error{Kind: KindRuntime, Err: err}
}

// export converts a goja value to plain Go data.
func export(v goja.Value) interface{} {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.Export()
}
