package hypara

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareGroup() *Group[int, int] {
	g := NewGroup[int, int]()
	g.AddValue("x1", func(x int) int { return x * 1 })
	g.AddValue("x2", func(x int) int { return x * 2 })
	g.AddValue("x3", func(x int) int { return x * 3 })
	return g
}

func TestGroupAllNamesInOrder(t *testing.T) {
	g := squareGroup()

	res, err := g.All(5)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, NamedValue[int]{"x1", 5}, res[0])
	assert.Equal(t, NamedValue[int]{"x2", 10}, res[1])
	assert.Equal(t, NamedValue[int]{"x3", 15}, res[2])
}

func TestGroupAllSkipsFailedEntries(t *testing.T) {
	g := NewGroup[int, int]()
	g.AddValue("ok", func(x int) int { return x })
	g.Add("bad", func(int) (int, error) { return 0, errors.New("broken") })

	res, err := g.All(7)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "ok", res[0].Name)
}

func TestGroupAny(t *testing.T) {
	g := NewGroup[int, int]()
	g.AddTask("slow", sleepTask(150*time.Millisecond, func(x int) int { return -x }))
	g.AddValue("fast", func(x int) int { return x })

	name, val, err := g.Any(9)
	require.NoError(t, err)
	assert.Equal(t, "fast", name)
	assert.Equal(t, 9, val)
}

func TestGroupAnyMatch(t *testing.T) {
	g := NewGroup[int, int]()
	g.AddValue("x10", func(x int) int { return x * 10 })
	g.AddValue("x20", func(x int) int { return x * 20 })
	g.AddValue("x30", func(x int) int { return x * 30 })

	name, val, err := g.AnyMatch(func(v int) bool { return v > 250 }, 10)
	require.NoError(t, err)
	assert.Equal(t, "x30", name)
	assert.Equal(t, 300, val)
}

func TestGroupOrderedMatch(t *testing.T) {
	g := NewGroup[int, int]()
	g.AddValue("x1", func(x int) int { return x * 1 })
	g.AddValue("x3", func(x int) int { return x * 3 })
	g.AddValue("x2", func(x int) int { return x * 2 })

	name, val, err := g.OrderedMatch(func(v int) bool { return v > 12 }, 5)
	require.NoError(t, err)
	assert.Equal(t, "x3", name)
	assert.Equal(t, 15, val)
}

func TestGroupOrderedMatchExhaustedName(t *testing.T) {
	g := squareGroup()

	name, _, err := g.OrderedMatch(func(v int) bool { return v > 1000 }, 2)
	assert.Equal(t, "", name)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestGroupBest(t *testing.T) {
	g := squareGroup()

	val, err := g.Best(func(a, b int) bool { return a < b }, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, val)
}

func TestGroupEmptyEveryStrategy(t *testing.T) {
	g := NewGroup[int, int]()
	pred := func(int) bool { return true }
	prefer := func(a, b int) bool { return a < b }

	start := time.Now()

	res, err := g.All(1)
	require.NoError(t, err)
	assert.Empty(t, res)

	name, _, err := g.Any(1)
	assert.Equal(t, "", name)
	assert.ErrorIs(t, err, ErrAllFailed)

	name, _, err = g.AnyMatch(pred, 1)
	assert.Equal(t, "", name)
	assert.ErrorIs(t, err, ErrAllFailed)

	name, _, err = g.OrderedMatch(pred, 1)
	assert.Equal(t, "", name)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = g.Best(prefer, 1)
	assert.ErrorIs(t, err, ErrAllFailed)

	// None of the empty-group calls may block.
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestGroupLenAndNames(t *testing.T) {
	g := squareGroup()
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"x1", "x2", "x3"}, g.Names())

	// Names returns a copy; mutating it must not affect the group.
	g.Names()[0] = "mutated"
	assert.Equal(t, "x1", g.Names()[0])
}

func TestGroupDuplicateNamesReportedPositionally(t *testing.T) {
	g := NewGroup[int, int]()
	g.AddValue("dup", func(x int) int { return 1 })
	g.AddValue("dup", func(x int) int { return 2 })

	res, err := g.All(0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].Value)
	assert.Equal(t, 2, res[1].Value)
	assert.Equal(t, res[0].Name, res[1].Name)
}

type fahrenheit struct {
	offset float64
}

func (f *fahrenheit) convert(c float64) (float64, error) {
	return c*9/5 + f.offset, nil
}

func TestGroupMethodValueReceiverBinding(t *testing.T) {
	conv := &fahrenheit{offset: 32}
	g := NewGroup[float64, float64]()
	g.Add("to-fahrenheit", conv.convert)

	res, err := g.All(100)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 212.0, res[0].Value)
}

func TestGroupFailureAttributionCarriesNames(t *testing.T) {
	g := NewGroup[int, int]()
	g.Add("left", func(int) (int, error) { return 0, errors.New("left broke") })
	g.Add("right", func(int) (int, error) { return 0, errors.New("right broke") })

	_, _, err := g.Any(1)
	require.ErrorIs(t, err, ErrAllFailed)

	causes := AllTaskErrors(err)
	require.Len(t, causes, 2)
	names := []string{causes[0].Task.Name, causes[1].Task.Name}
	assert.ElementsMatch(t, []string{"left", "right"}, names)
}

func TestGroupConcurrentExecution(t *testing.T) {
	g := squareGroup()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			res, err := g.All(2)
			assert.NoError(t, err)
			assert.Len(t, res, 3)
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
