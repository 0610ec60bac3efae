package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"japa/internal/modules/session/domain"
	sessionout "japa/internal/modules/session/port/out"
	"japa/internal/platform/markdown"
)

type journalHeader struct {
	SchemaVersion int     `yaml:"schema_version"`
	Date          string  `yaml:"date"`
	Sessions      int     `yaml:"sessions"`
	TotalCounts   int     `yaml:"total_counts"`
	TotalMalas    float64 `yaml:"total_malas"`
}

// MarkdownJournal writes one note per day under <dir>/journal/YYYY/MM/DD.md.
// Only the managed session block is regenerated on re-export.
type MarkdownJournal struct{}

func NewMarkdownJournal() sessionout.JournalWriter {
	return MarkdownJournal{}
}

func (MarkdownJournal) WriteDay(_ context.Context, dir string, day domain.DayJournal) (string, error) {
	date := day.Date
	noteDir := filepath.Join(dir, "journal", date.Format("2006"), date.Format("01"))
	if err := os.MkdirAll(noteDir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(noteDir, date.Format("02")+".md")

	body := fmt.Sprintf("# Japa %s\n", date.Format("Monday, January 2, 2006"))
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		var previous journalHeader
		rest, _, splitErr := markdown.Split(string(existing), &previous)
		if splitErr != nil {
			return "", fmt.Errorf("read journal %s: %w", path, splitErr)
		}
		body = strings.TrimPrefix(rest, "\n")
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("read journal %s: %w", path, err)
	}

	total := day.TotalCounts()
	header := journalHeader{
		SchemaVersion: domain.SchemaVersion,
		Date:          date.Format("2006-01-02"),
		Sessions:      len(day.Sessions),
		TotalCounts:   total,
		TotalMalas:    roundTenth(domain.Malas(total)),
	}
	body = markdown.ReplaceBlock(body, domain.JournalBlockStart, domain.JournalBlockEnd, renderSessions(day, date.Location()))
	rendered, err := markdown.Render(header, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal: %w", err)
	}
	return path, nil
}

func renderSessions(day domain.DayJournal, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("| time | chant | counts | malas |\n|---|---|---:|---:|")
	for _, s := range day.Sessions {
		fmt.Fprintf(&b, "\n| %s | %s | %d | %.1f |", s.Time(loc).Format("15:04"), s.ChantName, s.TotalCounts, s.TotalMalas)
	}
	return b.String()
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
