package logic

import (
	"sort"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	corelogic "github.com/paulfryers/coronavirus-dashboard/internal/logic"
)

// SortCodesByName returns the codes of set ordered by display name.
// Names are compared byte-wise; areas with equal names keep the order in
// which they appeared in the dataset.
func SortCodesByName(set domain.AreaSet) []string {
	codes := append([]string(nil), set.Codes...)
	sort.SliceStable(codes, func(i, j int) bool {
		return set.ByCode[codes[i]].Name < set.ByCode[codes[j]].Name
	})
	return codes
}

// SortCodesByCases orders codes by total cases, highest first, falling
// back to name order.
func SortCodesByCases(set domain.AreaSet) []string {
	codes := SortCodesByName(set)
	sort.SliceStable(codes, func(i, j int) bool {
		return set.ByCode[codes[i]].TotalCases > set.ByCode[codes[j]].TotalCases
	})
	return codes
}

// SortCodes applies mode to set.
func SortCodes(set domain.AreaSet, mode corelogic.SortMode) []string {
	switch mode {
	case corelogic.SortByCases:
		return SortCodesByCases(set)
	default:
		return SortCodesByName(set)
	}
}
