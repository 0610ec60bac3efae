package mala

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "japa/internal/modules/goal/dto"
	sessiondomain "japa/internal/modules/session/domain"
	sessiondto "japa/internal/modules/session/dto"
	"japa/internal/ui/components"
	"japa/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type MalaPort interface {
	Tap(ctx context.Context, chantName string) (sessiondto.TapOutput, error)
	Summary(ctx context.Context) (goaldto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SummaryLoadedMsg struct {
	Summary goaldto.SummaryOutput
	Err     error
}

// TappedMsg reports a recorded tap. MalaCompleted is set when the tap closed
// a full round of the wheel.
type TappedMsg struct {
	Out           sessiondto.TapOutput
	MalaCompleted bool
	Err           error
}

// ─── model ───────────────────────────────────────────────────────────────────

const beadsPerRow = 27

type Model struct {
	port      MalaPort
	beads     sessiondomain.BeadCounter
	summary   goaldto.SummaryOutput
	loaded    bool
	lastTap   sessiondto.TapOutput
	celebrate bool
	width     int
	height    int
}

func New(port MalaPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Position is the bead the wheel currently rests on.
func (m Model) Position() int { return m.beads.Position() }

func (m Model) Reload() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		s, err := port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: s, Err: err}
	}
}

// Tap advances the wheel and records one recitation of the active chant.
func (m *Model) Tap() tea.Cmd {
	if m.port == nil || !m.loaded {
		return nil
	}
	_, completed := m.beads.Advance()
	m.celebrate = completed
	port, chant := m.port, m.summary.ChantName
	return func() tea.Msg {
		out, err := port.Tap(context.Background(), chant)
		return TappedMsg{Out: out, MalaCompleted: completed, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SummaryLoadedMsg:
		if msg.Err == nil {
			m.summary = msg.Summary
			m.loaded = true
		}
	case TappedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.lastTap = msg.Out
		return m, m.Reload()
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter", "j":
			cmd := m.Tap()
			return m, cmd
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	s := m.summary

	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(s.ChantName) + "\n\n")
	sb.WriteString(m.renderWheel() + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d / %d\n", theme.Title.Render("bead"), m.beads.Position(), sessiondomain.BeadsPerMala))
	if m.celebrate {
		sb.WriteString(theme.Good.Render("mala complete") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s  %d counts · %s malas\n", theme.Title.Render("today   "), s.TodayCounts, s.TodayMalas))
	sb.WriteString(fmt.Sprintf("%s  %d counts · %s malas\n", theme.Title.Render("lifetime"), s.LifetimeCounts, s.LifetimeMalas))

	if s.Daily.GoalType != "none" && s.Daily.Target > 0 {
		barW := min(m.width-24, 48)
		sb.WriteString(fmt.Sprintf("\n%s  %s %.0f%%  %s\n",
			theme.Title.Render("daily goal"),
			components.Bar(barW, s.Daily.Clamped/100, theme.Green),
			s.Daily.Clamped,
			theme.Muted.Render(fmt.Sprintf("%d / %d", s.Daily.Current, s.Daily.Target)),
		))
	}
	if m.lastTap.Session.ID != "" {
		sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("session: %d counts over %ds",
			m.lastTap.Session.TotalCounts, m.lastTap.Session.DurationSeconds)) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("space/enter: count a bead"))

	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return theme.PaneActive.Width(w).Render(sb.String())
}

func (m Model) renderWheel() string {
	pos := m.beads.Position()
	done := lipgloss.NewStyle().Foreground(theme.Peach)
	head := lipgloss.NewStyle().Foreground(theme.Yellow).Bold(true)
	rest := lipgloss.NewStyle().Foreground(theme.Surface1)

	rows := make([]string, 0, sessiondomain.BeadsPerMala/beadsPerRow)
	var row strings.Builder
	for i := 0; i < sessiondomain.BeadsPerMala; i++ {
		switch {
		case i < pos:
			row.WriteString(done.Render("●"))
		case i == pos:
			row.WriteString(head.Render("◉"))
		default:
			row.WriteString(rest.Render("○"))
		}
		if (i+1)%beadsPerRow == 0 {
			rows = append(rows, row.String())
			row.Reset()
		} else {
			row.WriteString(" ")
		}
	}
	return strings.Join(rows, "\n")
}
