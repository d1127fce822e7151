package logic

import "github.com/paulfryers/coronavirus-dashboard/internal/domain"

// DatasetStore provides access to the currently loaded dataset
type DatasetStore interface {
	// Current returns the loaded dataset, or nil before the first load.
	Current() *domain.Dataset
	// Replace swaps in a new dataset and returns the previous one.
	Replace(ds *domain.Dataset) *domain.Dataset
	// Source returns where the current dataset was loaded from.
	Source() string
	SetSource(src string)
	// Generation increases on every Replace.
	Generation() uint64
}

// Sort modes
type SortMode int

const (
	SortByName SortMode = iota
	SortByCases
)

// String returns the mode name shown in the status line.
func (m SortMode) String() string {
	switch m {
	case SortByCases:
		return "cases"
	default:
		return "name"
	}
}

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	if m == SortByCases {
		return SortByName
	}
	return SortByCases
}
