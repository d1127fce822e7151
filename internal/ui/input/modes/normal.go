package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulfryers/coronavirus-dashboard/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return navigate("up"), true
	case key.Matches(msg, k.Down):
		return navigate("down"), true
	case key.Matches(msg, k.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, k.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, k.Home):
		return navigate("home"), true
	case key.Matches(msg, k.End):
		return navigate("end"), true
	case key.Matches(msg, k.ScrollUp):
		return []types.Action{types.ScrollAction{Pages: -1}}, true
	case key.Matches(msg, k.ScrollDown):
		return []types.Action{types.ScrollAction{Pages: 1}}, true

	case key.Matches(msg, k.NextTab):
		return []types.Action{types.SwitchTabAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevTab):
		return []types.Action{types.SwitchTabAction{Delta: -1}}, true

	case key.Matches(msg, k.Activate):
		// Rows are plain text in the narrow layout
		if !ctx.Interactive() || ctx.CurrentCode() == "" {
			return nil, false
		}
		return []types.Action{types.ActivateAction{Key: msg.String()}}, true

	case key.Matches(msg, k.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, false

	case key.Matches(msg, k.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	case key.Matches(msg, k.ViewAs):
		return []types.Action{types.ToggleViewAsAction{}}, true
	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, k.Export):
		return []types.Action{types.ExportAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, k.SaveView):
		return []types.Action{types.SaveViewAction{}}, true
	case key.Matches(msg, k.About):
		return []types.Action{types.ShowAboutAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
