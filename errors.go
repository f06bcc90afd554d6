package fmqe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the handful of entry points that can
// legitimately fail on bad caller input without corrupting engine state.
var (
	ErrUnknownVariable       = errors.New("fmqe: unknown variable id")
	ErrConstraintUnsatisfied = errors.New("fmqe: model does not satisfy constraint at add time")
	ErrDuplicateVariable     = errors.New("fmqe: constraint references the same variable twice")
	ErrZeroCoefficient       = errors.New("fmqe: constraint has a zero-coefficient term")
)

func errf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Debug is the default for an Engine's assertion checks, described in
// SPEC_FULL.md section 7/10.3: WithDebug overrides it per instance. It
// defaults to true; release callers that have measured the cost may set it
// to false once, before constructing any Engine that should start disabled.
var Debug = true

// assertf panics with a formatted message when cond is false and this
// engine's debug flag is enabled. It is a no-op otherwise. It exists to
// catch programmer errors (precondition violations), never legitimate
// runtime conditions.
func (e *Engine) assertf(cond bool, format string, args ...interface{}) {
	if e.debug && !cond {
		panic(fmt.Sprintf("fmqe: assertion failed: "+format, args...))
	}
}
