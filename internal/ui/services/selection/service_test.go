package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
)

type fixedMode viewport.Mode

func (m fixedMode) Mode() viewport.Mode { return viewport.Mode(m) }

func newService(t *testing.T, mode viewport.Mode) (*Service, *[]SelectionChangedEvent) {
	t.Helper()
	bus := events.NewBus()
	var changes []SelectionChangedEvent
	bus.Subscribe(events.TypeOf(SelectionChangedEvent{}), func(e interface{}) {
		changes = append(changes, e.(SelectionChangedEvent))
	})
	return NewService(bus, fixedMode(mode)), &changes
}

func TestSelectingOneKindDeselectsOthers(t *testing.T) {
	s, _ := newService(t, viewport.Desktop)

	s.SelectRegion("E12000001")
	s.SelectCountry("E92000001")

	assert.Equal(t, Selection{Kind: Country, ID: "E92000001"}, s.Current())
	assert.True(t, s.IsSelected(Country, "E92000001"))
	assert.False(t, s.IsSelected(Region, "E12000001"))
}

func TestAtMostOneKindSelected(t *testing.T) {
	s, _ := newService(t, viewport.Desktop)
	ops := []func(){
		func() { s.SelectCountry("C") },
		func() { s.SelectLocalAuthority("L") },
		func() { s.SelectRegion("R") },
		func() { s.SelectCountry("") },
		func() { s.SelectRegion("R2") },
	}
	for _, op := range ops {
		op()
		selected := 0
		for _, k := range []Kind{Country, Region, LocalAuthority} {
			if s.Current().Kind == k {
				selected++
			}
		}
		assert.LessOrEqual(t, selected, 1)
	}
	assert.True(t, s.IsSelected(Region, "R2"))
}

func TestEmptyIDClears(t *testing.T) {
	s, _ := newService(t, viewport.Desktop)
	s.SelectLocalAuthority("E09000033")
	s.SelectLocalAuthority("")

	assert.True(t, s.Current().IsZero())
	assert.False(t, s.IsSelected(LocalAuthority, "E09000033"))
	assert.False(t, s.IsSelected(None, ""))
}

func TestClickAndEnterProduceSameState(t *testing.T) {
	clicked, _ := newService(t, viewport.Desktop)
	pressed, _ := newService(t, viewport.Desktop)

	clicked.Click(Region, "E12000007")
	pressed.KeyPress(Region, "E12000007", EnterKey)

	assert.Equal(t, clicked.Current(), pressed.Current())
}

func TestOnlyEnterActivates(t *testing.T) {
	s, changes := newService(t, viewport.Desktop)
	for _, key := range []string{" ", "tab", "a", "esc"} {
		s.KeyPress(Country, "E92000001", key)
	}
	assert.True(t, s.Current().IsZero())
	assert.Empty(t, *changes)
}

func TestMobileIgnoresActivation(t *testing.T) {
	s, changes := newService(t, viewport.Mobile)
	assert.False(t, s.Interactive())

	s.Click(Country, "E92000001")
	s.KeyPress(Country, "E92000001", EnterKey)

	assert.True(t, s.Current().IsZero())
	assert.Empty(t, *changes)
}

func TestActivationFollowsLiveViewportMode(t *testing.T) {
	src := viewport.NewTerminalSource()
	src.SetWidth(150)
	sub := viewport.NewObservable(src).Observe(viewport.DefaultBreakpoint)
	defer sub.Close()

	s := NewService(nil, sub)
	s.Click(Region, "A")
	require.True(t, s.IsSelected(Region, "A"))

	src.SetWidth(50)
	s.Click(Region, "B")
	assert.True(t, s.IsSelected(Region, "A"))
}

func TestChangesPublishedInCallOrder(t *testing.T) {
	s, changes := newService(t, viewport.Desktop)
	s.SelectCountry("C")
	s.SelectCountry("C")
	s.SelectRegion("R")
	s.Clear()

	assert.Equal(t, []SelectionChangedEvent{
		{Old: Selection{}, New: Selection{Kind: Country, ID: "C"}},
		{Old: Selection{Kind: Country, ID: "C"}, New: Selection{Kind: Region, ID: "R"}},
		{Old: Selection{Kind: Region, ID: "R"}, New: Selection{}},
	}, *changes)
}

func TestNilModeReaderIsDesktop(t *testing.T) {
	s := NewService(nil, nil)
	s.Click(Country, "X")
	assert.True(t, s.IsSelected(Country, "X"))
}
