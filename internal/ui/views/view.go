package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

const serviceName = "Coronavirus (COVID-19) in the UK"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Mode   viewport.Mode

	Dataset   *domain.Dataset
	ActiveTab state.Tab
	Rows      []string
	Cursor    int
	Offset    int
	// TableHeight is the number of data rows the table shows at once.
	TableHeight int
	Selection   selection.Selection

	ViewAsTable bool
	FilterQuery string
	SortMode    string

	// InputView is the rendered text input while a text mode is active.
	InputView string

	Loading       bool
	StatusMessage string
	StatusIsError bool

	ShowHelp  bool
	HelpModel help.Model
	Keys      help.KeyMap
}

// Frame is one rendered body plus the regions of it that react to clicks.
type Frame struct {
	Body  string
	Zones []Zone
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
	tiles  *TileMapRenderer
	charts *ChartRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles),
		tiles:  NewTileMapRenderer(styles),
		charts: NewChartRenderer(styles),
	}
}

// Styles exposes the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// frameBuilder appends blocks to the body while counting lines so zones
// can be recorded in body coordinates.
type frameBuilder struct {
	sb    strings.Builder
	line  int
	zones []Zone
}

func (b *frameBuilder) add(block string) int {
	top := b.line
	b.sb.WriteString(block)
	b.sb.WriteString("\n")
	b.line += strings.Count(block, "\n") + 1
	return top
}

func (b *frameBuilder) blank() {
	b.add("")
}

func (b *frameBuilder) zone(z Zone, top int) {
	z.Y0 += top
	z.Y1 += top
	b.zones = append(b.zones, z)
}

func (b *frameBuilder) frame() Frame {
	return Frame{Body: strings.TrimRight(b.sb.String(), "\n"), Zones: b.zones}
}

// Render renders the scrollable dashboard body
func (r *Renderer) Render(vs ViewState) Frame {
	b := &frameBuilder{}
	width := vs.Width
	if width <= 0 {
		width = 80
	}

	b.add(r.styles.Title.Render(serviceName))
	if vs.Dataset != nil {
		if updated := uilogic.FormatDate(vs.Dataset.LastUpdatedAt); updated != "" {
			b.add(r.styles.Subtitle.Render("Last updated " + updated))
		}
	}

	if vs.Dataset == nil || vs.Dataset.Empty() {
		b.blank()
		if vs.Loading {
			b.add(r.styles.StatusLoading.Render("Loading data..."))
		} else {
			b.add(r.styles.Dim.Render("No data loaded. Press r to reload."))
		}
		return b.frame()
	}

	b.blank()
	b.add(r.renderNumbers(vs.Dataset, vs.Mode, width))
	b.blank()

	if vs.Mode == viewport.Mobile {
		r.renderMobileAreas(b, vs, width)
	} else {
		r.renderDesktopAreas(b, vs, width)
	}

	b.blank()
	r.renderChartSection(b, vs, width)

	if vs.Dataset.Disclaimer != "" {
		b.add(r.styles.Disclaimer.Width(width).Render(vs.Dataset.Disclaimer))
	}
	return b.frame()
}

// headline is one of the big numbers at the top of the page.
type headline struct {
	caption string
	value   int64
}

func headlines(ds *domain.Dataset) []headline {
	uk := ds.UnitedKingdom()
	return []headline{
		{"Total number of lab-confirmed UK cases", uk.TotalCases},
		{"Daily number of lab-confirmed UK cases", uk.NewCases},
		{"Total number of COVID-19 associated UK deaths", uk.Deaths},
		{"Daily number of COVID-19 associated UK deaths", uilogic.LatestDailyDeaths(ds)},
	}
}

func (r *Renderer) renderNumbers(ds *domain.Dataset, mode viewport.Mode, width int) string {
	hs := headlines(ds)
	boxes := make([]string, 0, len(hs))

	boxWidth := 24
	if mode == viewport.Mobile {
		boxWidth = width - 4
	}
	if boxWidth < 10 {
		boxWidth = 10
	}

	for _, h := range hs {
		body := lipgloss.JoinVertical(lipgloss.Left,
			r.styles.NumberCaption.Width(boxWidth).Render(h.caption),
			r.styles.NumberValue.Render(uilogic.FormatCount(h.value)),
		)
		boxes = append(boxes, r.styles.NumberBox.Render(body))
	}

	if mode == viewport.Mobile {
		return lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}

	// Wrap boxes onto as many rows as the width needs.
	var rows []string
	var current []string
	used := 0
	for _, box := range boxes {
		w := lipgloss.Width(box)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, box)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTabs renders the tab bar and records a zone per label.
func (r *Renderer) renderTabs(b *frameBuilder, active state.Tab) {
	var parts []string
	x := 0
	var zones []Zone
	sep := r.styles.Dim.Render(" │ ")
	for i, tab := range state.Tabs {
		if i > 0 {
			parts = append(parts, sep)
			x += lipgloss.Width(sep)
		}
		style := r.styles.TabInactive
		if tab == active {
			style = r.styles.TabActive
		}
		label := style.Render(tab.Label())
		w := lipgloss.Width(label)
		zones = append(zones, Zone{Kind: ZoneTab, Tab: tab, X0: x, X1: x + w, Y0: 0, Y1: 1})
		parts = append(parts, label)
		x += w
	}
	top := b.add(strings.Join(parts, ""))
	for _, z := range zones {
		b.zone(z, top)
	}
}

func (r *Renderer) renderDesktopAreas(b *frameBuilder, vs ViewState, width int) {
	r.renderTabs(b, vs.ActiveTab)

	if header := r.renderListHeader(vs); header != "" {
		b.add(header)
	}

	areas := vs.ActiveTab.Areas(vs.Dataset)
	table, rowZones := r.table.Render(TableInput{
		Tab:       vs.ActiveTab,
		Areas:     areas,
		Rows:      vs.Rows,
		Cursor:    vs.Cursor,
		Offset:    vs.Offset,
		Height:    vs.TableHeight,
		Selection: vs.Selection,
		Query:     vs.FilterQuery,
	})

	gap := "   "
	tableWidth := lipgloss.Width(table)
	mapWidth := width - tableWidth - len(gap)

	tiles, tileZones := r.tiles.Render(TileMapInput{
		Tab:       vs.ActiveTab,
		Areas:     areas,
		Rows:      vs.Rows,
		Selection: vs.Selection,
		Width:     mapWidth,
	})

	var block string
	if tiles == "" {
		block = table
		tileZones = nil
	} else {
		block = lipgloss.JoinHorizontal(lipgloss.Top, table, gap, tiles)
	}
	top := b.add(block)
	for _, z := range rowZones {
		b.zone(z, top)
	}
	shift := tableWidth + len(gap)
	for _, z := range tileZones {
		z.X0 += shift
		z.X1 += shift
		b.zone(z, top)
	}
}

func (r *Renderer) renderListHeader(vs ViewState) string {
	var parts []string
	if vs.FilterQuery != "" {
		parts = append(parts, r.styles.Filter.Render(fmt.Sprintf("filter: %s", vs.FilterQuery)))
	}
	if vs.SortMode != "" {
		parts = append(parts, r.styles.Dim.Render("sort: "+vs.SortMode))
	}
	return strings.Join(parts, "  ")
}

// renderMobileAreas renders the navigation bar and a plain list without
// cursor or selection.
func (r *Renderer) renderMobileAreas(b *frameBuilder, vs ViewState, width int) {
	r.renderTabs(b, vs.ActiveTab)
	if header := r.renderListHeader(vs); header != "" {
		b.add(header)
	}

	areas := vs.ActiveTab.Areas(vs.Dataset)
	if len(vs.Rows) == 0 {
		b.add(r.styles.Dim.Render("No matching areas"))
		return
	}
	for _, code := range vs.Rows {
		a := areas.ByCode[code]
		value := uilogic.FormatCount(a.TotalCases)
		if vs.ActiveTab.ShowsDeaths() {
			value += " / " + uilogic.FormatCount(a.Deaths)
		}
		b.add(spread(a.Name, value, width))
	}
}

func (r *Renderer) renderChartSection(b *frameBuilder, vs ViewState, width int) {
	chartLabel, tableLabel := "chart", "table"
	style := func(on bool) lipgloss.Style {
		if on {
			return r.styles.TabActive
		}
		return r.styles.TabInactive
	}
	prefix := "View as: "
	chart := style(!vs.ViewAsTable).Render(chartLabel)
	table := style(vs.ViewAsTable).Render(tableLabel)
	top := b.add(prefix + chart + " " + table)

	x0 := lipgloss.Width(prefix)
	x1 := x0 + lipgloss.Width(chart)
	b.zone(Zone{Kind: ZoneViewAs, ViewAsTable: false, X0: x0, X1: x1, Y0: 0, Y1: 1}, top)
	b.zone(Zone{Kind: ZoneViewAs, ViewAsTable: true, X0: x1 + 1, X1: x1 + 1 + lipgloss.Width(table), Y0: 0, Y1: 1}, top)

	for _, block := range r.charts.RenderAll(vs.Dataset, width, vs.ViewAsTable) {
		b.add(block)
	}
}

// RenderFooter renders the fixed status and help lines below the body.
func (r *Renderer) RenderFooter(vs ViewState) string {
	var lines []string

	switch {
	case vs.InputView != "":
		lines = append(lines, vs.InputView)
	case vs.StatusIsError && vs.StatusMessage != "":
		lines = append(lines, r.styles.StatusError.Render(vs.StatusMessage))
	case vs.Loading:
		lines = append(lines, r.styles.StatusLoading.Render("Loading..."))
	case vs.StatusMessage != "":
		lines = append(lines, r.styles.StatusSuccess.Render(vs.StatusMessage))
	default:
		lines = append(lines, r.styles.Dim.Render(r.selectionLine(vs)))
	}

	if vs.Keys != nil {
		if vs.ShowHelp {
			lines = append(lines, r.styles.HelpBox.Render(vs.HelpModel.FullHelpView(vs.Keys.FullHelp())))
		} else {
			lines = append(lines, vs.HelpModel.ShortHelpView(vs.Keys.ShortHelp()))
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) selectionLine(vs ViewState) string {
	if vs.Selection.IsZero() || vs.Dataset == nil {
		if vs.Mode == viewport.Mobile {
			return "mobile layout"
		}
		return "nothing selected"
	}
	tab, ok := state.TabForKind(vs.Selection.Kind)
	if !ok {
		return "nothing selected"
	}
	a, ok := tab.Areas(vs.Dataset).Get(vs.Selection.ID)
	if !ok {
		return "nothing selected"
	}
	return fmt.Sprintf("selected: %s (%s)", a.Name, vs.Selection.Kind)
}

// spread places left and right at the edges of a line of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
