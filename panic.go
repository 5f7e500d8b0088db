package hypara

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered from a task's callable, together
// with the goroutine stack captured at the point of the panic.
//
// A panicking task never crashes the caller or the combinator engine;
// the panic surfaces as an ordinary failure on the invocation's
// [Handle] and disqualifies the task from the call's candidates.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

func newPanicError(v any) *PanicError {
	// runtime.Stack truncates gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
