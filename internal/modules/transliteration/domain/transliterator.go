package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrPluginDisabled   = errors.New("transliterator is disabled")
	ErrChecksumMismatch = errors.New("transliterator checksum mismatch")
	ErrPluginTimeout    = errors.New("transliterator timeout")
	ErrNoResult         = errors.New("transliterator returned no text")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one out-of-process transliterator. An empty Languages
// list means every language is accepted.
type Manifest struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Binary    string   `json:"binary"`
	SHA256    string   `json:"sha256"`
	Enabled   bool     `json:"enabled"`
	Languages []string `json:"languages,omitempty"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("transliterator name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("transliterator version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("transliterator binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("transliterator sha256 must be lowercase 64-char hex")
	}
	seen := map[string]struct{}{}
	for _, lang := range m.Languages {
		key := strings.ToLower(strings.TrimSpace(lang))
		if key == "" {
			return fmt.Errorf("transliterator %s: empty language", m.Name)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate language: %s", lang)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (m Manifest) Supports(language string) bool {
	if len(m.Languages) == 0 {
		return true
	}
	for _, lang := range m.Languages {
		if strings.EqualFold(strings.TrimSpace(lang), strings.TrimSpace(language)) {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name      string
	Version   string
	Languages []string
}

// Request asks for Text rendered in the script of Language, named in English
// ("Hindi", "Tamil").
type Request struct {
	Text     string
	Language string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("text is required")
	}
	if strings.TrimSpace(r.Language) == "" {
		return fmt.Errorf("language is required")
	}
	return nil
}
