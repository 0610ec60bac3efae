package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "japa/internal/modules/settings/dto"
	translitdto "japa/internal/modules/transliteration/dto"
	"japa/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SettingsPort interface {
	Show(ctx context.Context) (settingsdto.SettingsOutput, error)
	Language(ctx context.Context, id string) (settingsdto.SettingsOutput, error)
	Chant(ctx context.Context, id string) (settingsdto.SettingsOutput, error)
	Custom(ctx context.Context, name, nativeName string) (settingsdto.SettingsOutput, error)
	Goal(ctx context.Context, goalType, value string) (settingsdto.SettingsOutput, error)
	Step(ctx context.Context, steps int) (settingsdto.SettingsOutput, error)
	Catalog(ctx context.Context) (settingsdto.CatalogOutput, error)
}

// TransliterationPort delivers results asynchronously through apply. Only the
// latest submission is ever applied.
type TransliterationPort interface {
	Submit(input translitdto.TransliterateInput, apply func(translitdto.TransliterateOutput))
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Settings settingsdto.SettingsOutput
	Catalog  settingsdto.CatalogOutput
	Err      error
}

// ChangedMsg follows every saved edit so dependent views can refresh.
type ChangedMsg struct {
	Settings settingsdto.SettingsOutput
	Err      error
}

type TransliteratedMsg struct {
	Out translitdto.TransliterateOutput
}

// ─── fields ──────────────────────────────────────────────────────────────────

type field int

const (
	fieldLanguage field = iota
	fieldChant
	fieldCustom
	fieldGoalType
	fieldGoalValue
	fieldCount
)

var fieldLabels = [fieldCount]string{"language", "chant", "custom chant", "goal type", "goal value"}

var goalTypes = []string{"none", "daily", "weekly", "monthly", "yearly"}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     SettingsPort
	translit TransliterationPort
	results  chan translitdto.TransliterateOutput

	settings settingsdto.SettingsOutput
	catalog  settingsdto.CatalogOutput
	loaded   bool
	focus    field
	editing  bool
	custom   textinput.Model
	pending  string
	width    int
	height   int
}

func New(port SettingsPort, translit TransliterationPort) Model {
	ti := textinput.New()
	ti.Placeholder = "chant name in English letters"
	ti.CharLimit = 120
	return Model{
		port:     port,
		translit: translit,
		results:  make(chan translitdto.TransliterateOutput, 1),
		custom:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.waitForTransliteration())
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.custom.Width = max(w-30, 10)
}

// Editing reports whether keystrokes belong to the custom chant input.
func (m Model) Editing() bool { return m.editing }

func (m Model) Reload() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		catalog, err := port.Catalog(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		s, err := port.Show(ctx)
		return LoadedMsg{Settings: s, Catalog: catalog, Err: err}
	}
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) change(fn func(ctx context.Context, port SettingsPort) (settingsdto.SettingsOutput, error)) tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		s, err := fn(context.Background(), port)
		return ChangedMsg{Settings: s, Err: err}
	}
}

func (m Model) SelectLanguage(id string) tea.Cmd {
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Language(ctx, id)
	})
}

func (m Model) SelectChant(id string) tea.Cmd {
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Chant(ctx, id)
	})
}

// SetCustom saves the custom chant name and queues a native-script lookup.
// The stored native name is only replaced when a lookup for this name lands;
// a failed lookup leaves it as it was.
func (m *Model) SetCustom(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	m.pending = name
	m.submitTransliteration(name)
	native := m.settings.CustomNativeName
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Custom(ctx, name, native)
	})
}

func (m Model) SetGoalType(goalType string) tea.Cmd {
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Goal(ctx, goalType, "")
	})
}

func (m Model) SetGoalValue(raw string) tea.Cmd {
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Goal(ctx, "", raw)
	})
}

func (m Model) StepGoal(steps int) tea.Cmd {
	return m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
		return p.Step(ctx, steps)
	})
}

func (m Model) submitTransliteration(text string) {
	if m.translit == nil {
		return
	}
	results := m.results
	m.translit.Submit(translitdto.TransliterateInput{Text: text, Language: m.settings.LanguageName}, func(out translitdto.TransliterateOutput) {
		// keep only the newest result if the UI has not drained the last one
		for {
			select {
			case results <- out:
				return
			default:
				select {
				case <-results:
				default:
				}
			}
		}
	})
}

func (m Model) waitForTransliteration() tea.Cmd {
	results := m.results
	return func() tea.Msg { return TransliteratedMsg{Out: <-results} }
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err == nil {
			m.settings = msg.Settings
			m.catalog = msg.Catalog
			m.loaded = true
			if !m.editing {
				m.custom.SetValue(msg.Settings.CustomName)
			}
		}
		return m, nil

	case ChangedMsg:
		if msg.Err == nil {
			m.settings = msg.Settings
		}
		return m, nil

	case TransliteratedMsg:
		var cmd tea.Cmd
		if msg.Out.Text == m.pending && m.port != nil {
			name, native := msg.Out.Text, msg.Out.NativeName
			cmd = m.change(func(ctx context.Context, p SettingsPort) (settingsdto.SettingsOutput, error) {
				return p.Custom(ctx, name, native)
			})
		}
		return m, tea.Batch(cmd, m.waitForTransliteration())

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigating(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.custom.Blur()
		m.custom.SetValue(m.settings.CustomName)
		return m, nil
	case "enter":
		m.editing = false
		m.custom.Blur()
		return m, tea.Batch(m.SetCustom(m.custom.Value()), m.SelectChant("custom"))
	}
	before := m.custom.Value()
	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	if v := m.custom.Value(); v != before {
		m.pending = strings.TrimSpace(v)
		m.submitTransliteration(m.pending)
	}
	return m, cmd
}

func (m Model) updateNavigating(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "down", "j":
		m.focus = (m.focus + 1) % fieldCount
	case "left", "h":
		return m, m.cycle(-1)
	case "right", "l":
		return m, m.cycle(1)
	case "enter":
		if m.focus == fieldCustom {
			m.editing = true
			return m, m.custom.Focus()
		}
	}
	return m, nil
}

func (m Model) cycle(dir int) tea.Cmd {
	switch m.focus {
	case fieldLanguage:
		ids := make([]string, len(m.catalog.Languages))
		for i, l := range m.catalog.Languages {
			ids[i] = l.ID
		}
		return m.SelectLanguage(next(ids, m.settings.LanguageID, dir))
	case fieldChant:
		ids := []string{}
		for _, c := range m.languageChants() {
			ids = append(ids, c.ID)
		}
		ids = append(ids, "custom")
		return m.SelectChant(next(ids, m.settings.ChantID, dir))
	case fieldGoalType:
		return m.SetGoalType(next(goalTypes, m.settings.GoalType, dir))
	case fieldGoalValue:
		return m.StepGoal(dir)
	}
	return nil
}

func next(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}

func (m Model) languageChants() []settingsdto.ChantOutput {
	for _, l := range m.catalog.Languages {
		if l.ID == m.settings.LanguageID {
			return l.Chants
		}
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	s := m.settings
	values := [fieldCount]string{
		fmt.Sprintf("%s (%s)", s.LanguageName, s.LanguageID),
		m.renderChant(),
		m.renderCustom(),
		s.GoalType,
		fmt.Sprintf("%d", s.GoalValue),
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	for f := field(0); f < fieldCount; f++ {
		label := fmt.Sprintf("%-14s", fieldLabels[f])
		if f == m.focus {
			sb.WriteString(theme.Hot.Render("› "+label) + values[f] + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("  "+label) + values[f] + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓: field  ←/→: change  enter: edit custom chant  esc: cancel"))

	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return theme.Pane.Width(w).Render(sb.String())
}

func (m Model) renderChant() string {
	s := m.settings
	for _, c := range m.languageChants() {
		if c.ID == s.ChantID {
			style := lipgloss.NewStyle().Foreground(theme.ChantColor(c.Color)).Bold(true)
			return style.Render(c.NativeName) + theme.Muted.Render("  "+c.Name)
		}
	}
	return theme.Hot.Render(s.ChantName) + theme.Muted.Render("  custom")
}

func (m Model) renderCustom() string {
	if m.editing {
		return m.custom.View()
	}
	s := m.settings
	if s.CustomName == "" {
		return theme.Muted.Render("(none)")
	}
	if s.CustomNativeName == "" {
		return s.CustomName
	}
	return s.CustomNativeName + theme.Muted.Render("  "+s.CustomName)
}
