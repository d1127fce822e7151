package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
)

// AboutMarkdown builds the about page: what the dashboard shows, where the
// data came from and the key bindings.
func AboutMarkdown(ds *domain.Dataset, source string, keys help.KeyMap) string {
	var b strings.Builder

	b.WriteString("# Coronavirus (COVID-19) in the UK\n\n")
	b.WriteString("A terminal dashboard of lab-confirmed cases and deaths for the UK, ")
	b.WriteString("its countries, English regions and upper tier local authorities.\n\n")

	b.WriteString("## Data\n\n")
	if source != "" {
		fmt.Fprintf(&b, "- Source: `%s`\n", source)
	}
	if ds != nil {
		if updated := uilogic.FormatDate(ds.LastUpdatedAt); updated != "" {
			fmt.Fprintf(&b, "- Last updated: %s\n", updated)
		}
		fmt.Fprintf(&b, "- Countries: %d, regions: %d, local authorities: %d\n",
			ds.Countries.Len(), ds.Regions.Len(), ds.Utlas.Len())
	} else {
		b.WriteString("- No dataset loaded\n")
	}
	b.WriteString("\n")

	if keys != nil {
		b.WriteString("## Keys\n\n")
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, group := range keys.FullHelp() {
			for _, binding := range group {
				h := binding.Help()
				fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
			}
		}
		b.WriteString("\nClick a table row or map tile to select an area on wide terminals.\n\n")
	}

	if ds != nil && ds.Disclaimer != "" {
		b.WriteString("## Disclaimer\n\n")
		b.WriteString(ds.Disclaimer)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal, wrapped to width.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// Pager shows long content in ov while the dashboard is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager bound to the running program
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show releases the terminal, runs ov on content and restores the
// terminal when ov exits.
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Give ov time to leave the alternate screen first
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the content to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
