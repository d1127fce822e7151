package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	pane "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/paulfryers/coronavirus-dashboard/internal/config"
	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
	"github.com/paulfryers/coronavirus-dashboard/internal/export"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/coordinator"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/handlers"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/input"
	inputtypes "github.com/paulfryers/coronavirus-dashboard/internal/ui/input/types"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/navigation"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/views"
)

const (
	statusTimeout = 4 * time.Second
	minTableRows  = 5
	maxTableRows  = 15
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	cfgSvc config.ConfigService
	state  *state.AppState // centralized state
	store  logic.DatasetStore
	logger *zap.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        inputtypes.KeyMap
	pane        pane.Model
	zones       []views.Zone
	inPagerMode bool
	// filterBefore is restored when filter input is cancelled
	filterBefore string

	// Services
	uiBus        *events.Bus
	terminal     *viewport.TerminalSource
	layout       *viewport.Observable
	coord        *coordinator.Coordinator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. A dataset already in store is shown
// immediately; otherwise Init requests a load.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.DatasetStore, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState()
	if tab, ok := state.ParseTab(cfg.UISettings.DefaultTab); ok {
		appState.ActiveTab = tab
	}
	appState.ViewAsTable = cfg.UISettings.DefaultView == "table"

	keys := inputtypes.DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		store:        store,
		logger:       logger.Named("ui"),
		help:         help.New(),
		keys:         keys,
		pane:         pane.New(0, 0),
		uiBus:        events.NewBus(),
		terminal:     viewport.NewTerminalSource(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
	}
	m.layout = viewport.NewObservable(m.terminal)
	m.coord = coordinator.NewCoordinator(m.uiBus, store, appState, m.layout.Observe(cfg.UISettings.Breakpoint))
	m.eventHandler = handlers.NewEventHandler(appState, m.coord.SyncDataset)

	m.uiBus.Subscribe(events.TypeOf(viewport.ModeChangedEvent{}), func(e interface{}) {
		change := e.(viewport.ModeChangedEvent)
		m.logger.Debug("layout changed", zap.Stringer("from", change.Old), zap.Stringer("to", change.New))
		m.pane.GotoTop()
	})

	if store.Current() != nil {
		appState.Source = store.Source()
		m.coord.SyncDataset()
	} else {
		appState.Loading = true
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// SetConfigService enables saving the tab and view as defaults
func (m *Model) SetConfigService(svc config.ConfigService) {
	m.cfgSvc = svc
}

// Close releases the model's subscriptions
func (m *Model) Close() {
	m.coord.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if !m.state.Loading || m.bus == nil {
		return nil
	}
	return func() tea.Msg {
		m.bus.Publish(eventbus.DataLoadRequestedEvent{Reason: "startup"})
		return nil
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.terminal.SetWidth(msg.Width)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Text input blink and other input messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := &input.ModelContext{
		State:       m.state,
		Coordinator: m.coord,
	}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.coord.Mode() == viewport.Mobile {
			m.scrollPane(a.Direction)
			return nil
		}
		m.coord.ActiveNavigation().Navigate(navigation.Direction(a.Direction))

	case inputtypes.ScrollAction:
		step := m.pane.Height / 2
		if step < 1 {
			step = 1
		}
		m.pane.SetYOffset(m.pane.YOffset + a.Pages*step)

	case inputtypes.SwitchTabAction:
		m.coord.SwitchTab(a.Delta)

	case inputtypes.ActivateAction:
		m.coord.Activate(a.Key)

	case inputtypes.ClearSelectionAction:
		m.coord.Selection.Clear()

	case inputtypes.ClearFilterAction:
		m.coord.ApplyFilter("")

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeFilter {
			m.filterBefore = m.state.FilterQuery
		}

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
			m.coord.ApplyFilter(a.Text)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.coord.ApplyFilter(a.Text)
			if a.Text != "" {
				rows := len(m.state.ActiveRows())
				m.state.SetStatus(fmt.Sprintf("%d %s match %q", rows, pluralRows(rows), a.Text))
				return clearStatusAfter()
			}
		}

	case inputtypes.CancelTextAction:
		m.coord.ApplyFilter(m.filterBefore)

	case inputtypes.ReloadAction:
		if m.bus == nil {
			return nil
		}
		m.state.Loading = true
		m.bus.Publish(eventbus.DataLoadRequestedEvent{Reason: "manual"})

	case inputtypes.ExportAction:
		return m.exportCharts()

	case inputtypes.CopyAction:
		return m.copyArea()

	case inputtypes.ToggleViewAsAction:
		m.state.ViewAsTable = !m.state.ViewAsTable

	case inputtypes.SaveViewAction:
		return m.saveView()

	case inputtypes.CycleSortAction:
		m.coord.Sorting.NextMode()
		m.state.SetStatus("Sorted by " + m.coord.Sorting.GetModeString())
		return clearStatusAfter()

	case inputtypes.ShowAboutAction:
		return m.showAbout()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// scrollPane moves the whole dashboard in the mobile layout, where there
// is no table cursor.
func (m *Model) scrollPane(direction string) {
	switch navigation.Direction(direction) {
	case navigation.DirectionUp:
		m.pane.SetYOffset(m.pane.YOffset - 1)
	case navigation.DirectionDown:
		m.pane.SetYOffset(m.pane.YOffset + 1)
	case navigation.DirectionPageUp:
		m.pane.SetYOffset(m.pane.YOffset - m.pane.Height)
	case navigation.DirectionPageDown:
		m.pane.SetYOffset(m.pane.YOffset + m.pane.Height)
	case navigation.DirectionHome:
		m.pane.GotoTop()
	case navigation.DirectionEnd:
		m.pane.GotoBottom()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inPagerMode {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		return cmd
	}
	if msg.Y >= m.pane.Height {
		return nil
	}

	z, ok := views.HitTest(m.zones, msg.X, msg.Y+m.pane.YOffset)
	if !ok {
		return nil
	}
	switch z.Kind {
	case views.ZoneTab:
		m.state.ActiveTab = z.Tab
	case views.ZoneRow, views.ZoneTile:
		m.coord.Selection.Click(z.Area, z.Code)
	case views.ZoneViewAs:
		m.state.ViewAsTable = z.ViewAsTable
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.StatusMessage != "" && !m.state.StatusIsError {
			return m, tea.Batch(cmd, clearStatusAfter())
		}
		return m, cmd

	case aboutPagerMsg:
		if msg.err != nil {
			m.logger.Warn("about pager failed", zap.Error(msg.err))
			m.state.SetError(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.state.SetError(fmt.Sprintf("Copy failed: %v", msg.err))
			return m, nil
		}
		m.state.SetStatus(fmt.Sprintf("Copied %s to clipboard", msg.name))
		return m, clearStatusAfter()

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if !m.state.StatusIsError {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		return m, nil
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// exportCharts writes the charts in the configured format and directory
func (m *Model) exportCharts() tea.Cmd {
	ds := m.state.Dataset
	if ds == nil {
		m.state.SetError("Nothing to export: no data loaded")
		return nil
	}
	dir, format := m.config.Export.Dir, m.config.Export.Format
	logger := m.logger
	m.state.SetStatus("Exporting charts...")
	return func() tea.Msg {
		files, err := export.ExportAll(dir, format, ds)
		if err != nil {
			logger.Error("export failed", zap.Error(err))
			return EventMsg{Event: eventbus.ErrorEvent{Message: "export failed", Err: err}}
		}
		logger.Info("charts exported", zap.Strings("files", files))
		return EventMsg{Event: eventbus.ChartsExportedEvent{Files: files}}
	}
}

// saveView writes the active tab and view into the config file
func (m *Model) saveView() tea.Cmd {
	if m.cfgSvc == nil {
		m.state.SetError("Config saving unavailable")
		return nil
	}
	m.config.UISettings.DefaultTab = m.state.ActiveTab.ID()
	m.config.UISettings.DefaultView = "chart"
	if m.state.ViewAsTable {
		m.config.UISettings.DefaultView = "table"
	}
	cfg := *m.config
	svc, logger := m.cfgSvc, m.logger
	return func() tea.Msg {
		if err := svc.Save(&cfg); err != nil {
			logger.Error("config save failed", zap.Error(err))
			return EventMsg{Event: eventbus.ErrorEvent{Message: "config save failed", Err: err}}
		}
		return EventMsg{Event: eventbus.ConfigSavedEvent{Path: svc.Path()}}
	}
}

// copyArea copies the selected area, or the row under the cursor, to the
// clipboard
func (m *Model) copyArea() tea.Cmd {
	if m.state.Dataset == nil {
		return nil
	}
	tab, code := m.state.ActiveTab, m.coord.GetCurrentCode()
	if sel := m.coord.Selection.Current(); !sel.IsZero() {
		if t, ok := state.TabForKind(sel.Kind); ok {
			tab, code = t, sel.ID
		}
	}
	text, ok := AreaSummary(m.state.Dataset, tab, code)
	if !ok {
		m.state.SetError("Nothing to copy")
		return nil
	}
	name := m.state.AreaName(tab, code)
	return func() tea.Msg {
		return copyDoneMsg{name: name, err: writeClipboard(text)}
	}
}

// showAbout renders the about page and shows it in the pager
func (m *Model) showAbout() tea.Cmd {
	if m.program == nil {
		m.state.SetError("Pager unavailable")
		return nil
	}
	md := AboutMarkdown(m.state.Dataset, m.state.Source, m.keys)
	width := m.width
	return func() tea.Msg {
		content, err := RenderMarkdown(md, width)
		if err != nil {
			return aboutPagerMsg{err: err}
		}

		// Stop rendering while ov owns the terminal
		m.program.Send(pauseRenderingMsg{})
		err = NewPager(m.program).Show(content)
		m.program.Send(resumeRenderingMsg{})

		return aboutPagerMsg{err: err}
	}
}

// updateViewportHeight sizes the table to the terminal
func (m *Model) updateViewportHeight() {
	rows := m.height - 20
	if rows < minTableRows {
		rows = minTableRows
	}
	if rows > maxTableRows {
		rows = maxTableRows
	}
	m.coord.SetViewportHeight(rows)
}

func (m *Model) viewState() views.ViewState {
	nav := m.coord.ActiveNavigation()
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Mode:          m.coord.Mode(),
		Dataset:       m.state.Dataset,
		ActiveTab:     m.state.ActiveTab,
		Rows:          m.state.ActiveRows(),
		Cursor:        nav.GetCursor(),
		Offset:        nav.GetViewportOffset(),
		TableHeight:   nav.GetViewportHeight(),
		Selection:     m.coord.Selection.Current(),
		ViewAsTable:   m.state.ViewAsTable,
		FilterQuery:   m.state.FilterQuery,
		SortMode:      m.coord.Sorting.GetModeString(),
		Loading:       m.state.Loading,
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		ShowHelp:      m.state.ShowHelp,
		HelpModel:     m.help,
		Keys:          m.keys,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputView = m.renderer.Styles().Filter.Render(m.inputHandler.Prompt()) + ti.View()
	}
	return vs
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vs := m.viewState()
	frame := m.renderer.Render(vs)
	footer := m.renderer.RenderFooter(vs)

	height := m.height - lipgloss.Height(footer)
	if height < 1 {
		height = 1
	}
	m.pane.Width = m.width
	m.pane.Height = height
	m.pane.SetContent(frame.Body)
	m.zones = frame.Zones

	return lipgloss.JoinVertical(lipgloss.Left, m.pane.View(), footer)
}

func pluralRows(n int) string {
	if n == 1 {
		return "row"
	}
	return "rows"
}
