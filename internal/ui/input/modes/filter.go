package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/paulfryers/coronavirus-dashboard/internal/ui/input/types"
)

// FilterMode narrows the table rows as the user types
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

// Enter starts from the filter already applied so it can be refined
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil && ctx != nil {
		m.textInput.SetValue(ctx.FilterQuery())
		m.textInput.CursorEnd()
	}
	return actions
}
