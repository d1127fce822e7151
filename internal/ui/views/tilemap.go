package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

const (
	tileWidth = 14
	tileGap   = 1
)

// TileMapInput is what the tile map needs to render one tab.
type TileMapInput struct {
	Tab       state.Tab
	Areas     domain.AreaSet
	Rows      []string
	Selection selection.Selection
	Width     int
}

// TileMapRenderer draws the active tab's areas as a grid of tiles shaded
// by total cases.
type TileMapRenderer struct {
	styles *Styles
}

// NewTileMapRenderer creates a new tile map renderer
func NewTileMapRenderer(styles *Styles) *TileMapRenderer {
	return &TileMapRenderer{styles: styles}
}

// Render returns the map and one zone per tile relative to its top-left
// corner. It returns "" when width cannot fit a single tile.
func (mr *TileMapRenderer) Render(in TileMapInput) (string, []Zone) {
	if in.Width < tileWidth || len(in.Rows) == 0 {
		return "", nil
	}
	perRow := (in.Width + tileGap) / (tileWidth + tileGap)
	if perRow < 1 {
		perRow = 1
	}

	var max int64
	for _, code := range in.Rows {
		if c := in.Areas.ByCode[code].TotalCases; c > max {
			max = c
		}
	}

	kind := in.Tab.Kind()
	lines := []string{mr.styles.Dim.Render("Map: " + in.Tab.Label())}
	var zones []Zone
	var current []string

	for i, code := range in.Rows {
		a := in.Areas.ByCode[code]
		label := runewidth.Truncate(a.Name, tileWidth-2, "…")

		style := mr.styles.Tile.Background(mr.styles.TileShade(a.TotalCases, max))
		if in.Selection.Kind == kind && in.Selection.ID == code {
			style = mr.styles.TileSelected
		}
		tile := style.Width(tileWidth).Padding(0, 1).Render(label)
		if len(current) > 0 {
			current = append(current, strings.Repeat(" ", tileGap))
		}
		current = append(current, tile)

		col := i % perRow
		y := 1 + i/perRow
		x := col * (tileWidth + tileGap)
		zones = append(zones, Zone{Kind: ZoneTile, Area: kind, Code: code, X0: x, X1: x + tileWidth, Y0: y, Y1: y + 1})

		if col == perRow-1 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	if len(current) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(lines, "\n"), zones
}
