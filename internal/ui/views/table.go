package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

const (
	maxNameWidth = 28

	// tableHeaderLines is the top border, the header row and the header
	// separator drawn above the first data row.
	tableHeaderLines = 3
)

// TableInput is what the region table needs to render one tab.
type TableInput struct {
	Tab       state.Tab
	Areas     domain.AreaSet
	Rows      []string
	Cursor    int
	Offset    int
	Height    int
	Selection selection.Selection
	Query     string
}

// TableRenderer renders the region table
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Render returns the table and one zone per visible row, relative to the
// table's top-left corner.
func (tr *TableRenderer) Render(in TableInput) (string, []Zone) {
	start, end := visibleRange(len(in.Rows), in.Offset, in.Height)
	visible := in.Rows[start:end]

	headers := []string{in.Tab.Column(), "Total cases"}
	if in.Tab.ShowsDeaths() {
		headers = append(headers, "Deaths")
	}

	kind := in.Tab.Kind()
	rows := make([][]string, 0, len(visible))
	for i, code := range visible {
		a := in.Areas.ByCode[code]
		marker := "  "
		switch {
		case in.Selection.Kind == kind && in.Selection.ID == code:
			marker = "● "
		case start+i == in.Cursor:
			marker = "› "
		}
		row := []string{
			marker + tr.renderName(a.Name, in.Query),
			uilogic.FormatCount(a.TotalCases),
		}
		if in.Tab.ShowsDeaths() {
			row = append(row, uilogic.FormatCount(a.Deaths))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tr.styles.TableBorder).
		Wrap(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tr.styles.TableHeader
			}
			idx := start + row
			var style lipgloss.Style
			switch {
			case idx < len(in.Rows) && in.Selection.Kind == kind && in.Selection.ID == in.Rows[idx]:
				style = tr.styles.SelectedRow
			case idx == in.Cursor:
				style = tr.styles.CursorRow
			default:
				style = tr.styles.Cell
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	rendered := t.Render()
	width := lipgloss.Width(rendered)

	zones := make([]Zone, 0, len(visible))
	for i, code := range visible {
		y := tableHeaderLines + i
		zones = append(zones, Zone{Kind: ZoneRow, Area: kind, Code: code, X0: 0, X1: width, Y0: y, Y1: y + 1})
	}

	var footer string
	switch {
	case len(in.Rows) == 0:
		footer = tr.styles.Dim.Render("No matching areas")
	case end-start < len(in.Rows):
		footer = tr.styles.Dim.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(in.Rows)))
	}
	if footer != "" {
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, footer)
	}
	return rendered, zones
}

// renderName truncates name and highlights the characters matching query.
func (tr *TableRenderer) renderName(name, query string) string {
	truncated := runewidth.Truncate(name, maxNameWidth, "…")
	positions := uilogic.MatchPositions(name, query)
	if len(positions) == 0 {
		return truncated
	}

	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}
	limit := len(truncated)
	if truncated != name {
		limit = len(strings.TrimSuffix(truncated, "…"))
	}

	var sb strings.Builder
	for i, r := range name {
		if i >= limit {
			break
		}
		if hit[i] {
			sb.WriteString(tr.styles.Highlight.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	if truncated != name {
		sb.WriteString("…")
	}
	return sb.String()
}

// visibleRange clamps the window [offset, offset+height) to total rows.
// A non-positive height shows everything.
func visibleRange(total, offset, height int) (int, int) {
	if height <= 0 || height > total {
		height = total
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset, offset + height
}
