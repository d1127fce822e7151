package views

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// ZoneKind identifies what a clickable zone does.
type ZoneKind int

const (
	ZoneTab ZoneKind = iota
	ZoneRow
	ZoneTile
	ZoneViewAs
)

// Zone is a clickable rectangle of the body. X1 and Y1 are exclusive.
type Zone struct {
	Kind ZoneKind
	X0   int
	X1   int
	Y0   int
	Y1   int

	Tab         state.Tab
	Area        selection.Kind
	Code        string
	ViewAsTable bool
}

// Contains reports whether the cell at x, y lies inside the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X0 && x < z.X1 && y >= z.Y0 && y < z.Y1
}

// HitTest returns the first zone containing x, y.
func HitTest(zones []Zone, x, y int) (Zone, bool) {
	for _, z := range zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}
