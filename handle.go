package hypara

import "sync"

// Handle is the completion cell for one task invocation. It is resolved
// exactly once, with either a value or an error, and can be observed by
// any number of readers; reading a resolved Handle never consumes it.
//
// A Handle is created by [Task.Invoke] and resolves when the invocation
// finishes. There is no way to abort the invocation through its Handle.
type Handle[R any] struct {
	once sync.Once
	done chan struct{}
	val  R
	err  error
}

func newHandle[R any]() *Handle[R] {
	return &Handle[R]{done: make(chan struct{})}
}

// resolve publishes the invocation's outcome. Subsequent calls are no-ops,
// so a value and an error can never both be observed.
func (h *Handle[R]) resolve(val R, err error) {
	h.once.Do(func() {
		h.val = val
		h.err = err
		close(h.done)
	})
}

// Done returns a channel that is closed when the invocation has resolved.
func (h *Handle[R]) Done() <-chan struct{} {
	return h.done
}

// Get blocks until the invocation resolves and returns its value or error.
// Get may be called any number of times, from any number of goroutines;
// every call returns the same outcome.
func (h *Handle[R]) Get() (R, error) {
	<-h.done
	return h.val, h.err
}

// TryGet reports the outcome without blocking. The third return value is
// false while the invocation is still running.
func (h *Handle[R]) TryGet() (R, error, bool) {
	select {
	case <-h.done:
		return h.val, h.err, true
	default:
		var zero R
		return zero, nil, false
	}
}
