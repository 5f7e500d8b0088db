// Package hypara runs homogeneous sets of tasks concurrently and
// reduces their results under a selected strategy: wait for all, race
// for the first, race for the first matching a predicate, scan in
// declared order for the first match, or pick the best by a comparator.
//
// # Tasks and Handles
//
// A [Task] wraps a callable of fixed signature. [Task.Invoke] launches
// the callable in its own goroutine and immediately returns a [Handle],
// a single-assignment cell any number of observers can read:
//
//	task := hypara.NewTaskValue(func(x float64) float64 {
//	    return math.Sqrt(x)
//	})
//	h := task.Invoke(8)
//	val, err := h.Get()
//
// Tasks are immutable and reusable; every invocation is independent.
// [Then] chains a continuation after a task, producing a new task with
// the continuation's result type. A failure short-circuits the chain.
//
// Panics in a callable are captured as [*PanicError] and surface
// through the Handle like any other failure; nothing is propagated
// synchronously.
//
// # Combinators
//
// The combinators invoke every task once with the same argument and
// block until a terminal state is reached:
//
//   - [All]: values of every task that succeeded, in original task
//     order regardless of completion order.
//   - [Any]: index and value of the first task to resolve successfully,
//     in completion order. Exactly one winner is ever claimed.
//   - [AnyMatch]: like Any, but only values accepted by a predicate
//     qualify; a resolved non-matching value is disqualified for good.
//   - [OrderedMatch]: waits on handles in declared order and returns
//     the first match, trading latency for a deterministic winner.
//   - [Best]: All plus a comparator reduction to the single most
//     preferred value.
//
// A failing task is a disqualified candidate, not a call failure. Calls
// that end without a usable result return a sentinel — [ErrAllFailed],
// [ErrNoMatch] or [ErrTimedOut] — as an ordinary, expected return path.
// Aggregate failures join the per-task causes; [AllTaskErrors] recovers
// them for diagnostics.
//
// # Timeouts
//
// [WithTimeout] bounds the wait, not the work: there is no cancellation
// primitive, so a task that loses a race or outlives the budget keeps
// running and its eventual result is observed and dropped. All and Best
// treat an expired budget as partiality, returning whatever resolved in
// time; the race-style combinators return [ErrTimedOut].
//
// # Groups
//
// A [Group] tags tasks with names and exposes the same combinators with
// name-qualified results:
//
//	g := hypara.NewGroup[float64, float64]()
//	g.AddValue("coarse", coarseEstimate)
//	g.AddValue("fine", fineEstimate)
//	name, val, err := g.Any(8)
//
// # Observability
//
// [WithOnObserve] registers a per-call hook fired as the engine
// observes each completion, with the task's identity, error and elapsed
// time since invocation.
package hypara
