package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "japa/internal/modules/goal/dto"
	sessiondto "japa/internal/modules/session/dto"
	settingsdto "japa/internal/modules/settings/dto"
	"japa/internal/ui/components"
	"japa/internal/ui/theme"
	historyview "japa/internal/ui/views/history"
	malaview "japa/internal/ui/views/mala"
	settingsview "japa/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Tap(ctx context.Context, chantName string) (sessiondto.TapOutput, error)
	History(ctx context.Context) (sessiondto.HistoryOutput, error)
	Clear(ctx context.Context, confirmed bool) error
	Export(ctx context.Context, dir string) (sessiondto.ExportOutput, error)
}

type goalPort interface {
	Progress(ctx context.Context, rangeName string) (goaldto.ProgressOutput, error)
	Series(ctx context.Context, rangeName string) (goaldto.SeriesOutput, error)
	Summary(ctx context.Context) (goaldto.SummaryOutput, error)
}

// Ports groups the module handlers the TUI drives.
type Ports struct {
	Sessions        sessionPort
	Goals           goalPort
	Settings        settingsview.SettingsPort
	Transliteration settingsview.TransliterationPort
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabMala tabID = iota
	tabHistory
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{"Mala", "History", "Settings"}

// ─── async messages ───────────────────────────────────────────────────────────

type exportedMsg struct {
	out sessiondto.ExportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Count   key.Binding
	Range   key.Binding
	Clear   key.Binding
	Field   key.Binding
	Change  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Count:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "count bead")),
		Range:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "range / value")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		Field:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "settings field")),
		Change:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit custom chant")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Count},
		{k.Range, k.Clear},
		{k.Field, k.Change},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; everything else lives in the sub-views.
type Model struct {
	sessions sessionPort

	malaView     malaview.Model
	historyView  historyview.Model
	settingsView settingsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ports Ports) Model {
	var malaV malaview.Model
	var historyV historyview.Model
	if ports.Sessions != nil && ports.Goals != nil {
		bridge := goalSessionBridge{sessions: ports.Sessions, goals: ports.Goals}
		malaV = malaview.New(bridge)
		historyV = historyview.New(bridge)
	} else {
		malaV = malaview.New(nil)
		historyV = historyview.New(nil)
	}

	return Model{
		sessions:     ports.Sessions,
		malaView:     malaV,
		historyView:  historyV,
		settingsView: settingsview.New(ports.Settings, ports.Transliteration),
		activeTab:    tabMala,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.malaView.Init(),
		m.historyView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case malaview.TappedMsg:
		switch {
		case msg.Err != nil:
			m.status = "tap failed: " + msg.Err.Error()
		case msg.MalaCompleted:
			m.status = theme.Good.Render("mala complete") + fmt.Sprintf("  %s", msg.Out.Session.ChantName)
		case msg.Out.Created:
			m.status = fmt.Sprintf("new session: %s", msg.Out.Session.ChantName)
		}
		cmds = append(cmds, m.historyView.Reload())

	case malaview.SummaryLoadedMsg:
		if msg.Err != nil {
			m.status = "summary: " + msg.Err.Error()
		}

	case historyview.LoadedMsg:
		if msg.Err != nil {
			m.status = "history: " + msg.Err.Error()
		}

	case historyview.ClearedMsg:
		if msg.Err != nil {
			m.status = "clear failed: " + msg.Err.Error()
		} else {
			m.status = "history cleared"
			cmds = append(cmds, m.malaView.Reload())
		}

	case settingsview.LoadedMsg:
		if msg.Err != nil {
			m.status = "settings: " + msg.Err.Error()
		}

	case settingsview.ChangedMsg:
		if msg.Err != nil {
			m.status = "settings: " + msg.Err.Error()
		} else {
			m.status = "saved: " + describeSettings(msg.Settings)
			cmds = append(cmds, m.malaView.Reload(), m.historyView.Reload())
		}

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d day(s)", msg.out.Days)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns the keyboard.
		if m.subViewCapturing() {
			return m.updateActive(msg, cmds)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
		return m.updateActive(msg, cmds)
	}

	// Non-key messages fan out to every view; each ignores what isn't its own.
	var cmd tea.Cmd
	m.malaView, cmd = m.malaView.Update(msg)
	cmds = append(cmds, cmd)
	m.historyView, cmd = m.historyView.Update(msg)
	cmds = append(cmds, cmd)
	m.settingsView, cmd = m.settingsView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateActive(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabMala:
		m.malaView, cmd = m.malaView.Update(msg)
	case tabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case tabSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, tea.Batch(append(cmds, cmd)...)
}

func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabHistory:
		return m.historyView.Confirming()
	case tabSettings:
		return m.settingsView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	m.malaView.SetSize(m.width, h)
	m.historyView.SetSize(m.width, h)
	m.settingsView.SetSize(m.width, h)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabMala:
		return m.malaView.View()
	case tabHistory:
		return m.historyView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "japa  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "tap":
		m.activeTab = tabMala
		return m, m.malaView.Tap()

	case "range":
		cmd, ok := m.historyView.SetRange(arg)
		if !ok {
			m.status = "usage: range <daily|weekly|monthly|yearly>"
			return m, nil
		}
		m.activeTab = tabHistory
		return m, cmd

	case "language":
		if arg == "" {
			m.status = "usage: language <id>"
			return m, nil
		}
		return m, m.settingsView.SelectLanguage(arg)

	case "chant":
		if arg == "" {
			m.status = "usage: chant <id|custom>"
			return m, nil
		}
		return m, m.settingsView.SelectChant(arg)

	case "custom":
		if arg == "" {
			m.status = "usage: custom <name>"
			return m, nil
		}
		return m, tea.Batch(m.settingsView.SetCustom(arg), m.settingsView.SelectChant("custom"))

	case "goal:type":
		if arg == "" {
			m.status = "usage: goal:type <none|daily|weekly|monthly|yearly>"
			return m, nil
		}
		return m, m.settingsView.SetGoalType(arg)

	case "goal:value":
		if arg == "" {
			m.status = "usage: goal:value <count>"
			return m, nil
		}
		return m, m.settingsView.SetGoalValue(arg)

	case "goal:step":
		steps, err := strconv.Atoi(strings.TrimPrefix(arg, "+"))
		if err != nil {
			m.status = "usage: goal:step <+n|-n>"
			return m, nil
		}
		return m, m.settingsView.StepGoal(steps)

	case "export":
		if arg == "" || m.sessions == nil {
			m.status = "usage: export <dir>"
			return m, nil
		}
		return m, m.exportCmd(arg)

	case "history:clear":
		m.activeTab = tabHistory
		m.historyView.AskClear()
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
		return m, nil
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) exportCmd(dir string) tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		out, err := sessions.Export(context.Background(), dir)
		return exportedMsg{out: out, err: err}
	}
}

func describeSettings(s settingsdto.SettingsOutput) string {
	goal := s.GoalType
	if s.GoalType != "none" {
		goal = fmt.Sprintf("%s %d", s.GoalType, s.GoalValue)
	}
	return fmt.Sprintf("%s · %s · goal %s", s.LanguageName, s.ChantName, goal)
}

// ─── port bridges ─────────────────────────────────────────────────────────────

// goalSessionBridge joins the session and goal handlers into the narrower
// ports the mala and history views consume.
type goalSessionBridge struct {
	sessions sessionPort
	goals    goalPort
}

func (b goalSessionBridge) Tap(ctx context.Context, chantName string) (sessiondto.TapOutput, error) {
	return b.sessions.Tap(ctx, chantName)
}

func (b goalSessionBridge) History(ctx context.Context) (sessiondto.HistoryOutput, error) {
	return b.sessions.History(ctx)
}

func (b goalSessionBridge) Clear(ctx context.Context, confirmed bool) error {
	return b.sessions.Clear(ctx, confirmed)
}

func (b goalSessionBridge) Progress(ctx context.Context, rangeName string) (goaldto.ProgressOutput, error) {
	return b.goals.Progress(ctx, rangeName)
}

func (b goalSessionBridge) Series(ctx context.Context, rangeName string) (goaldto.SeriesOutput, error) {
	return b.goals.Series(ctx, rangeName)
}

func (b goalSessionBridge) Summary(ctx context.Context) (goaldto.SummaryOutput, error) {
	return b.goals.Summary(ctx)
}
