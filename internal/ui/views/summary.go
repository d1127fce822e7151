package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// SummaryOptions controls the non-interactive rendering.
type SummaryOptions struct {
	Width int
	// Tabs limits the area tables; nil renders all three.
	Tabs []state.Tab
	// Charts adds the chart series as tables.
	Charts bool
}

// RenderSummary renders the dashboard as static text: headline numbers,
// every area table in name order, optionally the chart series, and the
// disclaimer.
func (r *Renderer) RenderSummary(ds *domain.Dataset, opts SummaryOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	tabs := opts.Tabs
	if tabs == nil {
		tabs = state.Tabs
	}

	var sections []string
	header := r.styles.Title.Render(serviceName)
	if updated := uilogic.FormatDate(ds.LastUpdatedAt); updated != "" {
		header += "\n" + r.styles.Subtitle.Render("Last updated "+updated)
	}
	sections = append(sections, header)

	var numbers []string
	for _, h := range headlines(ds) {
		numbers = append(numbers, spread(h.caption, uilogic.FormatCount(h.value), width))
	}
	sections = append(sections, strings.Join(numbers, "\n"))

	for _, tab := range tabs {
		sections = append(sections, r.styles.Section.Render(tab.Label())+"\n"+r.summaryTable(ds, tab))
	}

	if opts.Charts {
		for _, c := range charts.FromDataset(ds) {
			sections = append(sections, r.styles.Section.Width(width).Render(c.Title)+"\n"+r.charts.RenderTable(c))
		}
	}

	if ds.Disclaimer != "" {
		sections = append(sections, r.styles.Disclaimer.Width(width).Render(ds.Disclaimer))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (r *Renderer) summaryTable(ds *domain.Dataset, tab state.Tab) string {
	areas := tab.Areas(ds)
	headers := []string{tab.Column(), "Total cases"}
	if tab.ShowsDeaths() {
		headers = append(headers, "Deaths")
	}
	var rows [][]string
	for _, code := range uilogic.SortCodesByName(areas) {
		a := areas.ByCode[code]
		row := []string{a.Name, uilogic.FormatCount(a.TotalCases)}
		if tab.ShowsDeaths() {
			row = append(row, uilogic.FormatCount(a.Deaths))
		}
		rows = append(rows, row)
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.TableHeader
			}
			if col > 0 {
				return r.styles.NumericCell
			}
			return r.styles.Cell
		}).
		Render()
}
