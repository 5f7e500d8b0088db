package hypara

import "time"

// OrderedMatch invokes every task once with arg, then scans the handles
// in original task order: it waits for handle i to resolve, skips it if
// it failed, and returns (i, value) as soon as a value satisfies match.
// Completion order is irrelevant; a slow early task is waited out even
// if a later one would match sooner. The strategy trades latency for a
// deterministic winner index.
//
// The [WithTimeout] budget is shared across the whole scan, not reset
// per task. When the scan exhausts every handle without a match,
// OrderedMatch reports [ErrNoMatch]; when the budget runs out mid-scan,
// [ErrTimedOut]. Either way the returned index is len(tasks), the
// sentinel for "no usable value".
func OrderedMatch[A, R any](match func(R) bool, tasks []*Task[A, R], arg A, opts ...Option) (int, R, error) {
	if match == nil {
		panic("hypara: OrderedMatch requires a non-nil predicate")
	}
	return scanInOrder(tasks, nil, arg, newCallConfig(opts), match)
}

func scanInOrder[A, R any](tasks []*Task[A, R], labels []string, arg A, cfg callConfig, match func(R) bool) (int, R, error) {
	var zero R
	if len(tasks) == 0 {
		return 0, zero, ErrNoMatch
	}

	handles := invokeAll(tasks, arg)
	start := time.Now()
	expired := cfg.expiry()

	for i, h := range handles {
		select {
		case <-h.Done():
		case <-expired:
			return len(tasks), zero, ErrTimedOut
		}

		val, err := h.Get()
		cfg.observe(taskInfo(labels, i), err, time.Since(start))
		if err != nil {
			continue
		}
		if match(val) {
			return i, val, nil
		}
	}

	return len(tasks), zero, ErrNoMatch
}
