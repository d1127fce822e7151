package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Activate   key.Binding
	Clear      key.Binding
	Filter     key.Binding
	Sort       key.Binding
	ViewAs     key.Binding
	Reload     key.Binding
	Export     key.Binding
	Copy       key.Binding
	SaveView   key.Binding
	About      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		ScrollUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "scroll page up")),
		ScrollDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "scroll page down")),
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous tab")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select area")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		ViewAs:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "charts/tables")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export charts")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy area")),
		SaveView:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save tab and view as default")),
		About:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Activate, k.Filter, k.ViewAs, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.ScrollUp, k.ScrollDown},
		{k.NextTab, k.PrevTab, k.Activate, k.Clear, k.Filter, k.Sort},
		{k.ViewAs, k.Reload, k.Export, k.Copy, k.SaveView, k.About, k.Help, k.Quit},
	}
}
