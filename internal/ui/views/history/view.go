package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "japa/internal/modules/goal/dto"
	sessiondto "japa/internal/modules/session/dto"
	"japa/internal/ui/components"
	"japa/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	History(ctx context.Context) (sessiondto.HistoryOutput, error)
	Progress(ctx context.Context, rangeName string) (goaldto.ProgressOutput, error)
	Series(ctx context.Context, rangeName string) (goaldto.SeriesOutput, error)
	Clear(ctx context.Context, confirmed bool) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Range    string
	History  sessiondto.HistoryOutput
	Progress goaldto.ProgressOutput
	Series   goaldto.SeriesOutput
	Err      error
}

type ClearedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

var ranges = []string{"daily", "weekly", "monthly", "yearly"}

type Model struct {
	port       HistoryPort
	rangeIdx   int
	history    sessiondto.HistoryOutput
	progress   goaldto.ProgressOutput
	series     goaldto.SeriesOutput
	loaded     bool
	confirming bool
	sessions   viewport.Model
	width      int
	height     int
}

func New(port HistoryPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text)
	return Model{port: port, sessions: vp}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.sessions.Width = max(w-4, 10)
	m.sessions.Height = max(h-24, 3)
}

func (m Model) Range() string { return ranges[m.rangeIdx] }

// Confirming reports whether a clear is waiting for y/n.
func (m Model) Confirming() bool { return m.confirming }

// SetRange switches the report range. It reports false for unknown names.
func (m *Model) SetRange(name string) (tea.Cmd, bool) {
	for i, r := range ranges {
		if r == strings.ToLower(strings.TrimSpace(name)) {
			m.rangeIdx = i
			return m.Reload(), true
		}
	}
	return nil, false
}

// AskClear arms the clear confirmation prompt.
func (m *Model) AskClear() { m.confirming = true }

func (m Model) Reload() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port, rng := m.port, m.Range()
	return func() tea.Msg {
		ctx := context.Background()
		msg := LoadedMsg{Range: rng}
		if msg.History, msg.Err = port.History(ctx); msg.Err != nil {
			return msg
		}
		if msg.Progress, msg.Err = port.Progress(ctx, rng); msg.Err != nil {
			return msg
		}
		msg.Series, msg.Err = port.Series(ctx, rng)
		return msg
	}
}

func (m Model) clearCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		return ClearedMsg{Err: port.Clear(context.Background(), true)}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Err != nil || msg.Range != m.Range() {
			return m, nil
		}
		m.history = msg.History
		m.progress = msg.Progress
		m.series = msg.Series
		m.loaded = true
		m.sessions.SetContent(renderSessions(msg.History.Sessions))
		return m, nil

	case ClearedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.sessions.GotoTop()
		return m, m.Reload()

	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			if msg.String() == "y" && m.port != nil {
				return m, m.clearCmd()
			}
			return m, nil
		}
		switch msg.String() {
		case "left", "h":
			m.rangeIdx = (m.rangeIdx + len(ranges) - 1) % len(ranges)
			return m, m.Reload()
		case "right", "l":
			m.rangeIdx = (m.rangeIdx + 1) % len(ranges)
			return m, m.Reload()
		case "1", "2", "3", "4":
			m.rangeIdx = int(msg.String()[0] - '1')
			return m, m.Reload()
		case "x":
			m.confirming = true
			return m, nil
		case "r":
			return m, m.Reload()
		}
	}
	var cmd tea.Cmd
	m.sessions, cmd = m.sessions.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderRangeBar() + "\n\n")
	if !m.loaded {
		sb.WriteString(theme.Muted.Render("loading…"))
		return m.pane(sb.String())
	}

	p := m.progress
	barW := min(m.width-30, 48)
	if p.GoalType == "none" || p.Target == 0 {
		sb.WriteString(fmt.Sprintf("%s  %d counts  %s\n", theme.Title.Render("progress"), p.Current, theme.Muted.Render("no goal set")))
	} else {
		sb.WriteString(fmt.Sprintf("%s  %s %.0f%%  %s\n",
			theme.Title.Render("progress"),
			components.Bar(barW, p.Clamped/100, theme.Green),
			p.Percent,
			theme.Muted.Render(fmt.Sprintf("%d / %d (%s goal %d)", p.Current, p.Target, p.GoalType, p.GoalValue)),
		))
	}
	sb.WriteString("\n" + m.renderSeries() + "\n")
	sb.WriteString(theme.Title.Render(fmt.Sprintf("sessions (%d, %d counts)", len(m.history.Sessions), m.history.TotalCounts)) + "\n")
	sb.WriteString(m.sessions.View() + "\n")

	switch {
	case m.confirming:
		sb.WriteString("\n" + theme.Warn.Render("clear all history? y/n"))
	default:
		sb.WriteString("\n" + theme.Muted.Render("←/→ or 1-4: range  x: clear  r: reload"))
	}
	return m.pane(sb.String())
}

func (m Model) pane(body string) string {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return theme.Pane.Width(w).Render(body)
}

func (m Model) renderRangeBar() string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		if i == m.rangeIdx {
			parts[i] = theme.Hot.Render(r)
		} else {
			parts[i] = theme.Muted.Render(r)
		}
	}
	return strings.Join(parts, theme.Muted.Render(" · "))
}

func (m Model) renderSeries() string {
	if len(m.series.Points) == 0 {
		return theme.Muted.Render("no data")
	}
	labelW := 0
	for _, p := range m.series.Points {
		labelW = max(labelW, lipgloss.Width(p.Label))
	}
	barW := max(min(m.width-labelW-16, 40), 4)

	var sb strings.Builder
	for _, p := range m.series.Points {
		frac := 0.0
		if m.series.Max > 0 {
			frac = float64(p.Count) / float64(m.series.Max)
		}
		sb.WriteString(fmt.Sprintf("%-*s %s %d\n", labelW, p.Label, components.Bar(barW, frac, theme.Peach), p.Count))
	}
	return sb.String()
}

func renderSessions(sessions []sessiondto.SessionOutput) string {
	if len(sessions) == 0 {
		return theme.Muted.Render("no sessions yet")
	}
	var sb strings.Builder
	for _, s := range sessions {
		sb.WriteString(fmt.Sprintf("%s  %-24s %5d counts  %5.2f malas  %s\n",
			theme.Muted.Render(s.Timestamp.Format("Jan 2 15:04")),
			s.ChantName,
			s.TotalCounts,
			s.TotalMalas,
			theme.Muted.Render(formatDuration(s.DurationSeconds)),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
