package hypara

import "time"

// Option configures a single combinator call.
type Option func(*callConfig)

type callConfig struct {
	timeout   time.Duration
	onObserve func(TaskInfo, error, time.Duration)
}

func newCallConfig(opts []Option) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTimeout bounds how long the call waits for results, measured from
// the moment every task has been invoked. When the budget elapses the
// call stops waiting and returns whatever terminal state it reached;
// in-flight tasks are not aborted.
//
// A timeout of zero (the default) means wait indefinitely.
// WithTimeout panics if d is negative.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("hypara: WithTimeout requires a non-negative duration")
	}
	return func(c *callConfig) {
		c.timeout = d
	}
}

// WithOnObserve registers a hook invoked as the call observes each task
// completion. The hook receives the task's identity, its error (nil on
// success) and the elapsed time since the tasks were invoked. It runs
// on the calling goroutine, so it must not block.
//
// Completions the call never waits for (tasks still running when a
// winner is claimed or the timeout elapses) are not reported.
func WithOnObserve(fn func(task TaskInfo, err error, elapsed time.Duration)) Option {
	if fn == nil {
		panic("hypara: WithOnObserve requires a non-nil hook")
	}
	return func(c *callConfig) {
		c.onObserve = fn
	}
}

// expiry returns the channel the engine selects on for the timeout.
// A nil channel blocks forever, which is exactly the no-timeout case.
func (c *callConfig) expiry() <-chan time.Time {
	if c.timeout <= 0 {
		return nil
	}
	return time.After(c.timeout)
}

func (c *callConfig) observe(info TaskInfo, err error, elapsed time.Duration) {
	if c.onObserve != nil {
		c.onObserve(info, err, elapsed)
	}
}
