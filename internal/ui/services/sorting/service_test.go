package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
)

func TestSortFollowsMode(t *testing.T) {
	bus := events.NewBus()
	var changes []SortModeChangedEvent
	bus.Subscribe(events.TypeOf(SortModeChangedEvent{}), func(e interface{}) {
		changes = append(changes, e.(SortModeChangedEvent))
	})

	set := domain.NewAreaSet(
		domain.Area{Code: "A", Name: "Zeta", TotalCases: 10},
		domain.Area{Code: "B", Name: "Alpha", TotalCases: 1},
	)
	s := NewService(bus)
	assert.Equal(t, "name", s.GetModeString())
	assert.Equal(t, []string{"B", "A"}, s.Sort(set))

	s.NextMode()
	assert.Equal(t, logic.SortByCases, s.GetCurrentMode())
	assert.Equal(t, []string{"A", "B"}, s.Sort(set))

	s.SetMode(logic.SortByCases)
	assert.Len(t, changes, 1)
	assert.Equal(t, logic.SortByName, changes[0].OldMode)
}
