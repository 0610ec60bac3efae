package domain

import (
	"strings"

	goaldomain "japa/internal/modules/goal/domain"
)

const (
	CustomChantID     = "custom"
	customChantLabel  = "Custom"
	DefaultLanguageID = "sa"
	DefaultChantID    = "sa-1"
)

type CustomChant struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// DisplayName is what gets recorded for a custom chant: the native script
// when known, then the typed name, then a fixed label. Names are returned
// verbatim since session merging compares them exactly.
func (c CustomChant) DisplayName() string {
	if c.NativeName != "" {
		return c.NativeName
	}
	if c.Name != "" {
		return c.Name
	}
	return customChantLabel
}

type Settings struct {
	LanguageID  string                `json:"languageId"`
	ChantID     string                `json:"chantId"`
	CustomChant CustomChant           `json:"customChant"`
	Goal        goaldomain.GoalConfig `json:"goal"`
}

func Defaults() Settings {
	return Settings{
		LanguageID: DefaultLanguageID,
		ChantID:    DefaultChantID,
		Goal:       goaldomain.DefaultGoal(),
	}
}

// Normalize repairs references the catalog does not know. An unknown language
// falls back to the first language, an unknown chant to the first preset of
// the language. The custom chant id is always accepted.
func (s Settings) Normalize(c Catalog) Settings {
	if _, ok := c.Language(s.LanguageID); !ok && len(c.Languages) > 0 {
		s.LanguageID = c.Languages[0].ID
	}
	if s.ChantID != CustomChantID {
		if _, ok := c.Chant(s.LanguageID, s.ChantID); !ok {
			s.ChantID = c.FirstChant(s.LanguageID).ID
		}
	}
	if _, err := goaldomain.ParseGoalType(string(s.Goal.Type)); err != nil {
		s.Goal.Type = goaldomain.DefaultGoal().Type
	}
	if s.Goal.Value < 0 {
		s.Goal.Value = 0
	}
	return s
}

// ActiveChantName is the name a tap is recorded under.
func (s Settings) ActiveChantName(c Catalog) string {
	if s.ChantID == CustomChantID {
		return s.CustomChant.DisplayName()
	}
	if preset, ok := c.Chant(s.LanguageID, s.ChantID); ok {
		return preset.NativeName
	}
	return c.FirstChant(s.LanguageID).NativeName
}

// ActiveTransliteration is the latin rendering shown under the chant name.
func (s Settings) ActiveTransliteration(c Catalog) string {
	if s.ChantID == CustomChantID {
		return s.CustomChant.Name
	}
	if preset, ok := c.Chant(s.LanguageID, s.ChantID); ok {
		return preset.Name
	}
	return c.FirstChant(s.LanguageID).Name
}

// ParseGoalValue reads a typed goal value the way a lenient number field
// does: leading digits count, anything else is zero, negatives clamp to zero.
func ParseGoalValue(raw string) int {
	raw = strings.TrimSpace(raw)
	negative := false
	if raw != "" && (raw[0] == '-' || raw[0] == '+') {
		negative = raw[0] == '-'
		raw = raw[1:]
	}
	value := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		if value > maxGoalValue {
			value = maxGoalValue
		}
	}
	if negative {
		return 0
	}
	return value
}

const maxGoalValue = 1 << 30
