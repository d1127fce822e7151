package coordinator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

func regions() []domain.Area {
	names := []string{"Yorkshire", "London", "North East", "East", "South West", "West Midlands", "South East", "North West", "East Midlands"}
	out := make([]domain.Area, len(names))
	for i, name := range names {
		out[i] = domain.Area{Code: fmt.Sprintf("E1200000%d", i+1), Name: name}
	}
	return out
}

func setup(t *testing.T, width int) (*Coordinator, *viewport.TerminalSource, *state.AppState) {
	t.Helper()
	src := viewport.NewTerminalSource()
	src.SetWidth(width)
	sub := viewport.NewObservable(src).Observe(viewport.DefaultBreakpoint)

	store := logic.NewMemoryDatasetStore()
	store.Replace(&domain.Dataset{
		Countries: domain.NewAreaSet(
			domain.Area{Code: "W92000004", Name: "Wales"},
			domain.Area{Code: domain.EnglandCode, Name: "England"},
		),
		Regions: domain.NewAreaSet(regions()...),
	})

	appState := state.NewAppState()
	c := NewCoordinator(events.NewBus(), store, appState, sub)
	t.Cleanup(c.Close)
	c.SyncDataset()
	return c, src, appState
}

func TestSyncDatasetSortsRows(t *testing.T) {
	_, _, s := setup(t, 120)
	assert.Equal(t, []string{domain.EnglandCode, "W92000004"}, s.Rows[state.TabCountries])
	assert.Equal(t, "E12000004", s.Rows[state.TabRegions][0])
	assert.Empty(t, s.Rows[state.TabLocalAuthorities])
}

func TestActivateSelectsRowUnderCursor(t *testing.T) {
	c, _, s := setup(t, 120)
	s.ActiveTab = state.TabRegions
	c.ActiveNavigation().MoveToIndex(1)

	c.Activate("enter")
	want := s.Rows[state.TabRegions][1]
	assert.True(t, c.Selection.IsSelected(selection.Region, want))
}

func TestActivateIgnoredInMobileLayout(t *testing.T) {
	c, src, _ := setup(t, 120)
	src.SetWidth(60)
	require.Equal(t, viewport.Mobile, c.Mode())

	c.Activate("enter")
	assert.True(t, c.Selection.Current().IsZero())
}

func TestSelectionScrollsTableIntoView(t *testing.T) {
	c, _, s := setup(t, 120)
	c.SetViewportHeight(3)

	last := s.Rows[state.TabRegions][8]
	c.Selection.Click(selection.Region, last)

	nav := c.Navigation[state.TabRegions]
	assert.Equal(t, 8, nav.GetCursor())
	assert.Equal(t, 6, nav.GetViewportOffset())
	assert.Zero(t, c.Navigation[state.TabCountries].GetCursor())
}

func TestApplyFilterNarrowsRows(t *testing.T) {
	c, _, s := setup(t, 120)
	c.ApplyFilter("north")
	assert.Len(t, s.Rows[state.TabRegions], 2)
	assert.Empty(t, s.Rows[state.TabCountries])

	c.ApplyFilter("")
	assert.Len(t, s.Rows[state.TabRegions], 9)
}

func TestApplyFilterKeepsCursorOnSelection(t *testing.T) {
	c, _, s := setup(t, 120)
	c.Navigation[state.TabCountries].MoveToIndex(1)
	c.Selection.Click(selection.Region, "E12000006") // West Midlands

	c.ApplyFilter("west")

	rows := s.Rows[state.TabRegions]
	want := -1
	for i, code := range rows {
		if code == "E12000006" {
			want = i
		}
	}
	require.Greater(t, want, 0, "selected row should not be first: %v", rows)
	assert.Equal(t, want, c.Navigation[state.TabRegions].GetCursor())
	assert.Zero(t, c.Navigation[state.TabCountries].GetCursor())
}

func TestSyncDatasetDropsVanishedSelection(t *testing.T) {
	c, _, _ := setup(t, 120)
	c.Selection.SelectCountry("W92000004")

	c.store.Replace(&domain.Dataset{Countries: domain.NewAreaSet(domain.Area{Code: domain.EnglandCode})})
	c.SyncDataset()
	assert.True(t, c.Selection.Current().IsZero())
}

func TestModeChangePublished(t *testing.T) {
	bus := events.NewBus()
	var got []viewport.ModeChangedEvent
	bus.Subscribe(events.TypeOf(viewport.ModeChangedEvent{}), func(e interface{}) {
		got = append(got, e.(viewport.ModeChangedEvent))
	})

	src := viewport.NewTerminalSource()
	src.SetWidth(120)
	c := NewCoordinator(bus, logic.NewMemoryDatasetStore(), state.NewAppState(),
		viewport.NewObservable(src).Observe(100))
	defer c.Close()

	src.SetWidth(80)
	assert.Equal(t, []viewport.ModeChangedEvent{{Old: viewport.Desktop, New: viewport.Mobile}}, got)
}

func TestSwitchTab(t *testing.T) {
	c, _, s := setup(t, 120)
	c.SwitchTab(-1)
	assert.Equal(t, state.TabLocalAuthorities, s.ActiveTab)
	assert.Equal(t, "", c.GetCurrentCode())
}
