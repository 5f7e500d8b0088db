package hypara

// Task wraps a callable of fixed signature so it can be launched
// concurrently and combined with other tasks sharing that signature.
// A is the argument type and R the result type; callers with several
// logical arguments pass them as a single struct.
//
// A Task is immutable after construction. Invoking it repeatedly, or
// concurrently from several goroutines, is always valid; every
// invocation is independent and produces its own [Handle].
//
// Method values bind a receiver for free, so "task = method + object"
// needs no dedicated constructor:
//
//	conv := &Converter{Rate: 1.1}
//	task := hypara.NewTaskValue(conv.Apply)
type Task[A, R any] struct {
	fn func(A) (R, error)
}

// NewTask wraps fn in a Task. Panics if fn is nil.
func NewTask[A, R any](fn func(A) (R, error)) *Task[A, R] {
	if fn == nil {
		panic("hypara: NewTask requires a non-nil function")
	}
	return &Task[A, R]{fn: fn}
}

// NewTaskValue wraps an error-free callable. The resulting task fails
// only if fn panics.
func NewTaskValue[A, R any](fn func(A) R) *Task[A, R] {
	if fn == nil {
		panic("hypara: NewTaskValue requires a non-nil function")
	}
	return &Task[A, R]{fn: func(arg A) (R, error) {
		return fn(arg), nil
	}}
}

// Invoke starts the callable in its own goroutine and returns its
// [Handle] immediately; it never blocks the caller.
//
// A panic in the callable is captured as a [*PanicError] and surfaces
// through the Handle like any other failure. Nothing is propagated
// synchronously.
func (t *Task[A, R]) Invoke(arg A) *Handle[R] {
	h := newHandle[R]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				h.resolve(zero, newPanicError(r))
			}
		}()
		val, err := t.fn(arg)
		h.resolve(val, err)
	}()
	return h
}

// Get invokes the task and blocks until it resolves.
func (t *Task[A, R]) Get(arg A) (R, error) {
	return t.Invoke(arg).Get()
}

// Then composes a continuation after t. The returned task keeps t's
// argument type and exposes next's result type: invoking it runs t to
// completion and feeds the value into next. If t fails, the chained
// task fails with the same error and next is never called.
//
// Then is a free function because Go methods cannot introduce new type
// parameters.
func Then[A, R, S any](t *Task[A, R], next func(R) (S, error)) *Task[A, S] {
	if next == nil {
		panic("hypara: Then requires a non-nil continuation")
	}
	return NewTask(func(arg A) (S, error) {
		val, err := t.fn(arg)
		if err != nil {
			var zero S
			return zero, err
		}
		return next(val)
	})
}

// ThenValue is [Then] for error-free continuations.
func ThenValue[A, R, S any](t *Task[A, R], next func(R) S) *Task[A, S] {
	if next == nil {
		panic("hypara: ThenValue requires a non-nil continuation")
	}
	return Then(t, func(val R) (S, error) {
		return next(val), nil
	})
}

// invokeAll launches every task once with the same argument and returns
// the handles index-aligned with tasks. This is the shared setup of all
// combinators.
func invokeAll[A, R any](tasks []*Task[A, R], arg A) []*Handle[R] {
	handles := make([]*Handle[R], len(tasks))
	for i, t := range tasks {
		handles[i] = t.Invoke(arg)
	}
	return handles
}
