package state

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
)

// Tab is one panel of the region table
type Tab int

const (
	TabCountries Tab = iota
	TabRegions
	TabLocalAuthorities
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabCountries, TabRegions, TabLocalAuthorities}

// ID is the stable identifier used on the command line and in config.
func (t Tab) ID() string {
	switch t {
	case TabRegions:
		return "regions"
	case TabLocalAuthorities:
		return "local-authorities"
	default:
		return "countries"
	}
}

// Label is the tab heading.
func (t Tab) Label() string {
	switch t {
	case TabRegions:
		return "Regions"
	case TabLocalAuthorities:
		return "Upper tier local authorities"
	default:
		return "Countries"
	}
}

// Column is the heading of the name column.
func (t Tab) Column() string {
	switch t {
	case TabRegions:
		return "Region"
	case TabLocalAuthorities:
		return "UTLA"
	default:
		return "Country"
	}
}

// Kind is the selection kind of the tab's rows.
func (t Tab) Kind() selection.Kind {
	switch t {
	case TabRegions:
		return selection.Region
	case TabLocalAuthorities:
		return selection.LocalAuthority
	default:
		return selection.Country
	}
}

// ShowsDeaths reports whether the table has a deaths column.
func (t Tab) ShowsDeaths() bool {
	return t == TabCountries
}

// Areas returns the tab's slice of ds.
func (t Tab) Areas(ds *domain.Dataset) domain.AreaSet {
	if ds == nil {
		return domain.AreaSet{}
	}
	switch t {
	case TabRegions:
		return ds.Regions
	case TabLocalAuthorities:
		return ds.Utlas
	default:
		return ds.Countries
	}
}

// Next returns the tab delta places away, wrapping around.
func (t Tab) Next(delta int) Tab {
	n := len(Tabs)
	return Tab(((int(t)+delta)%n + n) % n)
}

// ParseTab maps an ID (with or without a leading '#') to a tab.
func ParseTab(id string) (Tab, bool) {
	if len(id) > 0 && id[0] == '#' {
		id = id[1:]
	}
	for _, t := range Tabs {
		if t.ID() == id {
			return t, true
		}
	}
	return TabCountries, false
}

// TabForKind returns the tab whose rows have kind.
func TabForKind(kind selection.Kind) (Tab, bool) {
	for _, t := range Tabs {
		if t.Kind() == kind {
			return t, true
		}
	}
	return TabCountries, false
}
