package hypara

// NamedValue pairs a task's registered name with the value it produced.
type NamedValue[R any] struct {
	Name  string
	Value R
}

// Group is an ordered collection of named tasks sharing one signature.
// It exposes the package-level combinators with the winning or
// collected indices translated back to names; behavior is otherwise
// identical, including skip-on-failure, single-winner claims and
// partial results under timeout.
//
// Names are labels, not keys: registration order is what the engine
// operates on, and duplicate names are allowed. If two entries share a
// name, results are still reported positionally, so a consumer matching
// on name may see either.
//
// A Group is not safe for concurrent mutation; register all tasks
// before executing. Executing the same Group from several goroutines
// concurrently is fine.
type Group[A, R any] struct {
	names []string
	tasks []*Task[A, R]
}

// NewGroup creates an empty task group.
func NewGroup[A, R any]() *Group[A, R] {
	return &Group[A, R]{}
}

// Add registers fn under name. Method values bind a receiver for free:
//
//	g.Add("scale", conv.Scale)
func (g *Group[A, R]) Add(name string, fn func(A) (R, error)) {
	g.AddTask(name, NewTask(fn))
}

// AddValue registers an error-free callable under name.
func (g *Group[A, R]) AddValue(name string, fn func(A) R) {
	g.AddTask(name, NewTaskValue(fn))
}

// AddTask registers an existing task under name. Panics if t is nil.
func (g *Group[A, R]) AddTask(name string, t *Task[A, R]) {
	if t == nil {
		panic("hypara: AddTask requires a non-nil task")
	}
	g.names = append(g.names, name)
	g.tasks = append(g.tasks, t)
}

// Len returns the number of registered tasks.
func (g *Group[A, R]) Len() int {
	return len(g.tasks)
}

// Names returns the registered names in registration order.
func (g *Group[A, R]) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// All runs every registered task with arg and returns (name, value)
// pairs for the succeeded subset, in registration order. See [All] for
// the failure and timeout contract. An empty group returns an empty
// result immediately.
func (g *Group[A, R]) All(arg A, opts ...Option) ([]NamedValue[R], error) {
	collected, err := collectAll(g.tasks, g.names, arg, newCallConfig(opts))
	if err != nil {
		return nil, err
	}
	out := make([]NamedValue[R], len(collected))
	for i, iv := range collected {
		out[i] = NamedValue[R]{Name: g.names[iv.index], Value: iv.value}
	}
	return out, nil
}

// Any returns the name and value of the first task to resolve
// successfully. See [Any]; the no-result name is "".
func (g *Group[A, R]) Any(arg A, opts ...Option) (string, R, error) {
	i, val, err := selectFirst(g.tasks, g.names, arg, newCallConfig(opts), nil)
	return g.nameAt(i), val, err
}

// AnyMatch returns the name and value of the first successfully-resolved
// value accepted by match. See [AnyMatch]; the no-result name is "".
func (g *Group[A, R]) AnyMatch(match func(R) bool, arg A, opts ...Option) (string, R, error) {
	if match == nil {
		panic("hypara: AnyMatch requires a non-nil predicate")
	}
	i, val, err := selectFirst(g.tasks, g.names, arg, newCallConfig(opts), match)
	return g.nameAt(i), val, err
}

// OrderedMatch scans results in registration order and returns the
// first name and value accepted by match. See [OrderedMatch]; the
// no-result name is "".
func (g *Group[A, R]) OrderedMatch(match func(R) bool, arg A, opts ...Option) (string, R, error) {
	if match == nil {
		panic("hypara: OrderedMatch requires a non-nil predicate")
	}
	i, val, err := scanInOrder(g.tasks, g.names, arg, newCallConfig(opts), match)
	return g.nameAt(i), val, err
}

// Best runs every registered task and returns the most preferred value
// under prefer. See [Best].
func (g *Group[A, R]) Best(prefer func(a, b R) bool, arg A, opts ...Option) (R, error) {
	if prefer == nil {
		panic("hypara: Best requires a non-nil comparator")
	}
	return pickBest(g.tasks, g.names, arg, newCallConfig(opts), prefer)
}

// nameAt translates an engine index back to a name; out-of-range
// indices (the engine's no-result sentinels) translate to "".
func (g *Group[A, R]) nameAt(i int) string {
	if i < 0 || i >= len(g.names) {
		return ""
	}
	return g.names[i]
}
