package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	Section       lipgloss.Style
	NumberBox     lipgloss.Style
	NumberCaption lipgloss.Style
	NumberValue   lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	TableBorder   lipgloss.Style
	TableHeader   lipgloss.Style
	Cell          lipgloss.Style
	NumericCell   lipgloss.Style
	CursorRow     lipgloss.Style
	SelectedRow   lipgloss.Style
	Tile          lipgloss.Style
	TileSelected  lipgloss.Style
	ChartAxis     lipgloss.Style
	ChartLine     lipgloss.Style
	ChartBar      lipgloss.Style
	Disclaimer    lipgloss.Style
	HelpBox       lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style

	// TileShades runs from fewest to most cases.
	TileShades []lipgloss.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Filter:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		NumberBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("33")).
			PaddingLeft(1).
			MarginRight(2),
		NumberCaption: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NumberValue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Underline(true),
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TableBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TableHeader:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:          lipgloss.NewStyle().Padding(0, 1),
		NumericCell:   lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		CursorRow:     lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		SelectedRow:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("226")).Bold(true),
		Tile:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TileSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226")).Bold(true),
		ChartAxis:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ChartLine:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		ChartBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Disclaimer:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).MarginTop(1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		TileShades: []lipgloss.Color{
			lipgloss.Color("153"),
			lipgloss.Color("117"),
			lipgloss.Color("75"),
			lipgloss.Color("33"),
			lipgloss.Color("21"),
		},
	}
}

// TileShade returns the shade for value on a 0..max scale
func (s *Styles) TileShade(value, max int64) lipgloss.Color {
	n := len(s.TileShades)
	if max <= 0 || value <= 0 {
		return s.TileShades[0]
	}
	i := int(value * int64(n) / (max + 1))
	if i >= n {
		i = n - 1
	}
	return s.TileShades[i]
}
