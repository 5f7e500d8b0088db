package hypara

// Best runs [All] and reduces the collected values to the single most
// preferred one. prefer(a, b) must report whether a should win over b;
// with a strict preference, ties keep the value from the lower task
// index.
//
// Best inherits All's partiality: under [WithTimeout] it selects among
// whatever resolved in time. It reports [ErrAllFailed] when there is
// nothing to select from, whether because every task failed, the
// budget elapsed with nothing resolved, or the task list was empty.
func Best[A, R any](prefer func(a, b R) bool, tasks []*Task[A, R], arg A, opts ...Option) (R, error) {
	if prefer == nil {
		panic("hypara: Best requires a non-nil comparator")
	}
	return pickBest(tasks, nil, arg, newCallConfig(opts), prefer)
}

func pickBest[A, R any](tasks []*Task[A, R], labels []string, arg A, cfg callConfig, prefer func(a, b R) bool) (R, error) {
	var zero R
	collected, err := collectAll(tasks, labels, arg, cfg)
	if err != nil {
		return zero, err
	}
	if len(collected) == 0 {
		return zero, ErrAllFailed
	}

	best := collected[0].value
	for _, iv := range collected[1:] {
		if prefer(iv.value, best) {
			best = iv.value
		}
	}
	return best, nil
}
