package viewport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Mobile, Classify(99, 100))
	assert.Equal(t, Desktop, Classify(100, 100))
	assert.Equal(t, Desktop, Classify(101, 100))
	assert.Equal(t, Mobile, Classify(0, 1))
	assert.Equal(t, "mobile", Mobile.String())
	assert.Equal(t, "desktop", Desktop.String())
}

func TestUnmeasuredWidthIsDesktop(t *testing.T) {
	o := NewObservable(NewTerminalSource())
	sub := o.Observe(DefaultBreakpoint)
	defer sub.Close()

	assert.Equal(t, Desktop, sub.Mode())
	_, known := o.Width()
	assert.False(t, known)
}

func TestInitialModeUsesCurrentWidth(t *testing.T) {
	src := NewTerminalSource()
	src.SetWidth(60)

	o := NewObservable(src)
	sub := o.Observe(DefaultBreakpoint)
	defer sub.Close()
	assert.Equal(t, Mobile, sub.Mode())
}

func TestSharedWatchIsReferenceCounted(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)

	subs := make([]*Subscription, 5)
	for i := range subs {
		subs[i] = o.Observe(DefaultBreakpoint)
	}
	assert.Equal(t, 1, src.Listeners())
	assert.Equal(t, 5, o.Subscribers())

	for _, s := range subs[:4] {
		s.Close()
		assert.Equal(t, 1, src.Listeners())
	}
	subs[4].Close()
	assert.Equal(t, 0, src.Listeners())
	assert.Equal(t, 0, o.Subscribers())
}

func TestReobserveAfterDetachReadsFreshWidth(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)

	o.Observe(DefaultBreakpoint).Close()
	src.SetWidth(40)

	sub := o.Observe(DefaultBreakpoint)
	defer sub.Close()
	assert.Equal(t, Mobile, sub.Mode())
	assert.Equal(t, 1, src.Listeners())
}

func TestSubscriptionsKeepTheirOwnBreakpoint(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)
	narrow := o.Observe(60)
	wide := o.Observe(120)
	defer narrow.Close()
	defer wide.Close()

	src.SetWidth(80)
	assert.Equal(t, Desktop, narrow.Mode())
	assert.Equal(t, Mobile, wide.Mode())

	src.SetWidth(130)
	assert.Equal(t, Desktop, narrow.Mode())
	assert.Equal(t, Desktop, wide.Mode())
	assert.Equal(t, 120, wide.Breakpoint())
}

func TestOnChangeFiresOnlyOnTransitionsInOrder(t *testing.T) {
	src := NewTerminalSource()
	src.SetWidth(150)
	o := NewObservable(src)
	sub := o.Observe(100)
	defer sub.Close()

	var seen []Mode
	sub.OnChange(func(m Mode) { seen = append(seen, m) })

	for _, w := range []int{140, 99, 80, 100, 100, 20, 101} {
		src.SetWidth(w)
	}
	assert.Equal(t, []Mode{Mobile, Desktop, Mobile, Desktop}, seen)
}

func TestCloseIsIdempotentAndStopsUpdates(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)
	keep := o.Observe(100)
	defer keep.Close()
	sub := o.Observe(100)

	calls := 0
	sub.OnChange(func(Mode) { calls++ })
	sub.Close()
	sub.Close()

	src.SetWidth(10)
	assert.Zero(t, calls)
	assert.Equal(t, Desktop, sub.Mode(), "closed subscription keeps its last mode")
	assert.Equal(t, Mobile, keep.Mode())
	assert.Equal(t, 1, o.Subscribers())
}

func TestCallbackMayCloseSubscription(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)
	sub := o.Observe(100)
	sub.OnChange(func(Mode) { sub.Close() })

	src.SetWidth(10)
	assert.Equal(t, 0, src.Listeners())
}

func TestFixedSource(t *testing.T) {
	o := NewObservable(FixedSource{Columns: 50, Known: true})
	sub := o.Observe(100)
	defer sub.Close()
	assert.Equal(t, Mobile, sub.Mode())

	unknown := NewObservable(FixedSource{})
	sub2 := unknown.Observe(100)
	defer sub2.Close()
	assert.Equal(t, Desktop, sub2.Mode())
}

func TestConcurrentObserveCloseAndResize(t *testing.T) {
	src := NewTerminalSource()
	o := NewObservable(src)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			sub := o.Observe(50 + i)
			_ = sub.Mode()
			sub.Close()
		}(i)
		go func(i int) {
			defer wg.Done()
			src.SetWidth(40 + i*5)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 0, o.Subscribers())
	assert.Equal(t, 0, src.Listeners())
}
