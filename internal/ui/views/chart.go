package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
)

const chartHeight = 8

// eighths are the partial bar glyphs from 1/8 to 7/8 of a cell.
var eighths = []rune("▁▂▃▄▅▆▇")

// ChartRenderer draws time series as terminal charts or as tables
type ChartRenderer struct {
	styles *Styles
}

// NewChartRenderer creates a new chart renderer
func NewChartRenderer(styles *Styles) *ChartRenderer {
	return &ChartRenderer{styles: styles}
}

// RenderAll renders the dataset's charts, one block per chart.
func (cr *ChartRenderer) RenderAll(ds *domain.Dataset, width int, asTable bool) []string {
	list := charts.FromDataset(ds)
	blocks := make([]string, 0, len(list))
	for _, c := range list {
		title := cr.styles.Section.Width(width).Render(c.Title)
		var body string
		if asTable {
			body = cr.RenderTable(c)
		} else {
			body = cr.RenderChart(c, width)
		}
		blocks = append(blocks, title+"\n"+body)
	}
	return blocks
}

// RenderChart draws c as a line or bar chart fitting width cells.
func (cr *ChartRenderer) RenderChart(c charts.Chart, width int) string {
	if len(c.Samples) == 0 {
		return cr.styles.Dim.Render("No data")
	}

	max := c.Max()
	top := uilogic.FormatCount(max)
	labelWidth := len(top)
	plotWidth := width - labelWidth - 2
	if plotWidth < 4 {
		plotWidth = 4
	}
	values := charts.Downsample(c.Values(), plotWidth)

	var grid [][]rune
	if c.Kind == charts.Bar {
		grid = barGrid(values, max, chartHeight)
	} else {
		grid = lineGrid(values, max, chartHeight)
	}

	plotStyle := cr.styles.ChartLine
	if c.Kind == charts.Bar {
		plotStyle = cr.styles.ChartBar
	}

	lines := make([]string, 0, chartHeight+2)
	for r, row := range grid {
		label := strings.Repeat(" ", labelWidth)
		switch r {
		case 0:
			label = top
		case len(grid) - 1:
			label = padLeft("0", labelWidth)
		}
		lines = append(lines, cr.styles.ChartAxis.Render(label+" ┤")+plotStyle.Render(string(row)))
	}
	lines = append(lines, cr.styles.ChartAxis.Render(strings.Repeat(" ", labelWidth)+" └"+strings.Repeat("─", len(values))))

	first := shortDate(c.Samples[0].Date)
	last := shortDate(c.Samples[len(c.Samples)-1].Date)
	axis := strings.Repeat(" ", labelWidth+2) + spread(first, last, len(values))
	lines = append(lines, cr.styles.ChartAxis.Render(axis))
	return strings.Join(lines, "\n")
}

// RenderTable renders c as a date/value table.
func (cr *ChartRenderer) RenderTable(c charts.Chart) string {
	rows := make([][]string, 0, len(c.Samples))
	for _, s := range c.Samples {
		rows = append(rows, []string{shortDate(s.Date), uilogic.FormatCount(s.Value)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(cr.styles.TableBorder).
		Headers("Date", c.ValueName).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cr.styles.TableHeader
			}
			if col == 1 {
				return cr.styles.NumericCell
			}
			return cr.styles.Cell
		})
	return t.Render()
}

// barGrid returns height rows of bars, top row first, with eighth-cell
// resolution.
func barGrid(values []int64, max int64, height int) [][]rune {
	grid := blankGrid(len(values), height)
	if max <= 0 {
		return grid
	}
	for x, v := range values {
		if v < 0 {
			v = 0
		}
		units := v * int64(height) * 8 / max
		for r := 0; r < height; r++ {
			filled := units - int64(height-1-r)*8
			switch {
			case filled >= 8:
				grid[r][x] = '█'
			case filled > 0:
				grid[r][x] = eighths[filled-1]
			}
		}
	}
	return grid
}

// lineGrid plots one point per column and joins consecutive points with
// vertical strokes.
func lineGrid(values []int64, max int64, height int) [][]rune {
	grid := blankGrid(len(values), height)
	if max <= 0 {
		for x := range values {
			grid[height-1][x] = '•'
		}
		return grid
	}
	level := func(v int64) int {
		if v < 0 {
			v = 0
		}
		return int((v*int64(height-1) + max/2) / max)
	}
	prev := -1
	for x, v := range values {
		l := level(v)
		if prev >= 0 && prev != l {
			lo, hi := prev, l
			if lo > hi {
				lo, hi = hi, lo
			}
			for k := lo + 1; k < hi; k++ {
				grid[height-1-k][x] = '│'
			}
		}
		grid[height-1-l][x] = '•'
		prev = l
	}
	return grid
}

func blankGrid(width, height int) [][]rune {
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	return grid
}

// shortDate renders a sample date as YYYY-MM-DD, or as published when it
// does not parse.
func shortDate(s string) string {
	t, ok := uilogic.ParseUTC(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02")
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
