package hypara

import "time"

// Any invokes every task once with arg and returns the index and value
// of the first task to resolve successfully, in completion order.
// Failed tasks are skipped and do not count as first.
//
// Exactly one winner is ever claimed, even when several handles resolve
// in the same instant. If every task fails, Any reports [ErrAllFailed];
// if the [WithTimeout] budget elapses first, [ErrTimedOut]. In both
// cases the returned index is -1.
func Any[A, R any](tasks []*Task[A, R], arg A, opts ...Option) (int, R, error) {
	return selectFirst(tasks, nil, arg, newCallConfig(opts), nil)
}

// AnyMatch is [Any] restricted to values accepted by match: the winner
// is the first successfully-resolved value satisfying the predicate.
// A value that resolves but does not match is disqualified and never
// reconsidered.
//
// If every task resolves or fails without a match, AnyMatch reports
// [ErrNoMatch] ([ErrAllFailed] when no task resolved at all); on an
// expired budget, [ErrTimedOut]. The returned index is -1 in all three
// cases.
func AnyMatch[A, R any](match func(R) bool, tasks []*Task[A, R], arg A, opts ...Option) (int, R, error) {
	if match == nil {
		panic("hypara: AnyMatch requires a non-nil predicate")
	}
	return selectFirst(tasks, nil, arg, newCallConfig(opts), match)
}

// selectFirst races the handles through a fan-in channel and claims the
// first qualifying completion. A nil match accepts every value.
//
// One watcher goroutine per handle parks on Done and forwards the index;
// the buffered channel lets losers finish and be observed without
// blocking after the winner is claimed. The drain loop is the single
// consumer, so the winner slot is claimed at most once by construction.
func selectFirst[A, R any](tasks []*Task[A, R], labels []string, arg A, cfg callConfig, match func(R) bool) (int, R, error) {
	var zero R
	if len(tasks) == 0 {
		return -1, zero, ErrAllFailed
	}

	handles := invokeAll(tasks, arg)
	start := time.Now()
	expired := cfg.expiry()

	resolved := make(chan int, len(handles))
	for i, h := range handles {
		go func(i int, h *Handle[R]) {
			<-h.Done()
			resolved <- i
		}(i, h)
	}

	var causes []error
	disqualified := 0

	for settled := 0; settled < len(handles); settled++ {
		select {
		case i := <-resolved:
			val, err := handles[i].Get()
			cfg.observe(taskInfo(labels, i), err, time.Since(start))
			if err != nil {
				causes = append(causes, &TaskError{Task: taskInfo(labels, i), Err: err})
				continue
			}
			if match != nil && !match(val) {
				disqualified++
				continue
			}
			return i, val, nil
		case <-expired:
			return -1, zero, ErrTimedOut
		}
	}

	if disqualified == 0 {
		return -1, zero, allFailed(causes)
	}
	return -1, zero, ErrNoMatch
}
