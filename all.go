package hypara

import "time"

// indexedValue pairs a collected value with the index of the task that
// produced it.
type indexedValue[R any] struct {
	index int
	value R
}

// All invokes every task once with arg and returns the values of the
// tasks that resolved successfully, in original task order regardless
// of completion order.
//
// A failing task is silently excluded; All reports [ErrAllFailed] only
// when every task failed. Under [WithTimeout], All returns the values
// collected before the budget elapsed (possibly none) and no timeout
// error of its own. An empty task list yields an empty result and nil
// error without blocking.
func All[A, R any](tasks []*Task[A, R], arg A, opts ...Option) ([]R, error) {
	collected, err := collectAll(tasks, nil, arg, newCallConfig(opts))
	if err != nil {
		return nil, err
	}
	vals := make([]R, len(collected))
	for i, iv := range collected {
		vals[i] = iv.value
	}
	return vals, nil
}

// collectAll is the engine behind [All], [Best] and their [Group]
// variants. It keeps task indices with the collected values so callers
// can translate them back to names.
func collectAll[A, R any](tasks []*Task[A, R], labels []string, arg A, cfg callConfig) ([]indexedValue[R], error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	handles := invokeAll(tasks, arg)
	start := time.Now()
	expired := cfg.expiry()

	collected := make([]indexedValue[R], 0, len(handles))
	var causes []error
	timedOut := false

	// Waiting in index order against the shared expiry naturally yields
	// the collected subset in original task order.
	for i, h := range handles {
		if timedOut {
			// Budget spent: take only what has already resolved.
			if val, err, ok := h.TryGet(); ok {
				cfg.observe(taskInfo(labels, i), err, time.Since(start))
				if err == nil {
					collected = append(collected, indexedValue[R]{i, val})
				} else {
					causes = append(causes, &TaskError{Task: taskInfo(labels, i), Err: err})
				}
			}
			continue
		}

		select {
		case <-h.Done():
		case <-expired:
			timedOut = true
			// The handle may have resolved in the same tick; the
			// timedOut sweep above re-checks it without blocking.
			if _, _, ok := h.TryGet(); !ok {
				continue
			}
		}

		val, err := h.Get()
		cfg.observe(taskInfo(labels, i), err, time.Since(start))
		if err != nil {
			causes = append(causes, &TaskError{Task: taskInfo(labels, i), Err: err})
			continue
		}
		collected = append(collected, indexedValue[R]{i, val})
	}

	if len(collected) == 0 && len(causes) == len(tasks) {
		return nil, allFailed(causes)
	}
	return collected, nil
}

func taskInfo(labels []string, i int) TaskInfo {
	info := TaskInfo{Index: i}
	if labels != nil {
		info.Name = labels[i]
	}
	return info
}
