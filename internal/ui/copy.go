package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// AreaSummary describes one area in a single line suitable for pasting.
func AreaSummary(ds *domain.Dataset, tab state.Tab, code string) (string, bool) {
	a, ok := tab.Areas(ds).Get(code)
	if !ok {
		return "", false
	}

	parts := []string{fmt.Sprintf("%s: %s total cases", a.Name, uilogic.FormatCount(a.TotalCases))}
	if tab.ShowsDeaths() {
		parts = append(parts, fmt.Sprintf("%s deaths", uilogic.FormatCount(a.Deaths)))
	}
	line := strings.Join(parts, ", ")
	if updated := uilogic.FormatDate(ds.LastUpdatedAt); updated != "" {
		line += " (as of " + updated + ")"
	}
	return line, true
}
