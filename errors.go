package hypara

import (
	"errors"
	"fmt"
)

// Call-level outcomes. Per-task failures never escape a combinator as
// errors of their own; a combinator either returns a usable result or
// one of these sentinels, detectable with [errors.Is].
var (
	// ErrAllFailed reports that no task produced a value: every task in
	// the call failed, or the call had no tasks at all.
	ErrAllFailed = errors.New("hypara: no task produced a value")

	// ErrNoMatch reports that every task resolved or failed without any
	// value satisfying the predicate.
	ErrNoMatch = errors.New("hypara: no resolved value matched the predicate")

	// ErrTimedOut reports that the call's timeout elapsed before a
	// usable result was reached. In-flight tasks keep running; only the
	// wait is abandoned.
	ErrTimedOut = errors.New("hypara: timed out before a usable result")
)

// TaskInfo identifies a task within one combinator call. Name is empty
// unless the task ran inside a [Group].
type TaskInfo struct {
	Index int
	Name  string
}

func (i TaskInfo) String() string {
	if i.Name != "" {
		return fmt.Sprintf("%q (index %d)", i.Name, i.Index)
	}
	return fmt.Sprintf("index %d", i.Index)
}

// TaskError attributes a single task's failure to the task that
// produced it. Aggregate failures such as [ErrAllFailed] join the
// per-task causes, so diagnostics survive the reduction.
type TaskError struct {
	Task TaskInfo
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s failed: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// IsTaskError reports whether err (or any error in its chain) is a
// [*TaskError].
func IsTaskError(err error) bool {
	var te *TaskError
	return errors.As(err, &te)
}

// AllTaskErrors collects every [*TaskError] from err's chain, including
// errors combined via [errors.Join]. Returns nil if none are found.
func AllTaskErrors(err error) []*TaskError {
	if err == nil {
		return nil
	}
	var out []*TaskError
	collectTaskErrors(err, &out)
	return out
}

func collectTaskErrors(err error, out *[]*TaskError) {
	switch e := err.(type) {
	case *TaskError:
		*out = append(*out, e)

	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			collectTaskErrors(sub, out)
		}

	case interface{ Unwrap() error }:
		collectTaskErrors(e.Unwrap(), out)
	}
}

// allFailed builds the aggregate error for a call in which no task
// produced a value, attaching the individual causes.
func allFailed(causes []error) error {
	if len(causes) == 0 {
		return ErrAllFailed
	}
	return errors.Join(ErrAllFailed, errors.Join(causes...))
}
