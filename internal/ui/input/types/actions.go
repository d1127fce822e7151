package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchTabAction struct {
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

// ScrollAction scrolls the whole dashboard by half pages
type ScrollAction struct {
	Pages int
}

func (a ScrollAction) Type() string { return "scroll" }

// Selection actions
type ActivateAction struct {
	Key string
}

func (a ActivateAction) Type() string { return "activate" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type ToggleViewAsAction struct{}

func (a ToggleViewAsAction) Type() string { return "toggle_view_as" }

// SaveViewAction stores the active tab and view as the configured defaults
type SaveViewAction struct{}

func (a SaveViewAction) Type() string { return "save_view" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ShowAboutAction struct{}

func (a ShowAboutAction) Type() string { return "show_about" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
