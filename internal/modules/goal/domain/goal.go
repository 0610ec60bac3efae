package domain

import (
	"fmt"
	"strings"

	"japa/internal/platform/calendar"
)

type GoalType string

const (
	GoalNone    GoalType = "none"
	GoalDaily   GoalType = "daily"
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalYearly  GoalType = "yearly"
)

var GoalTypes = []GoalType{GoalNone, GoalDaily, GoalWeekly, GoalMonthly, GoalYearly}

func ParseGoalType(raw string) (GoalType, error) {
	candidate := GoalType(strings.ToLower(strings.TrimSpace(raw)))
	for _, t := range GoalTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown goal type %q", raw)
}

// Range is a reporting window. It is independent of the goal's own type.
type Range string

const (
	RangeDaily   Range = "daily"
	RangeWeekly  Range = "weekly"
	RangeMonthly Range = "monthly"
	RangeYearly  Range = "yearly"
)

var Ranges = []Range{RangeDaily, RangeWeekly, RangeMonthly, RangeYearly}

func ParseRange(raw string) (Range, error) {
	candidate := Range(strings.ToLower(strings.TrimSpace(raw)))
	for _, r := range Ranges {
		if r == candidate {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q", raw)
}

func (r Range) Bucket() calendar.Bucket {
	switch r {
	case RangeWeekly:
		return calendar.Week
	case RangeMonthly:
		return calendar.Month
	case RangeYearly:
		return calendar.Year
	default:
		return calendar.Day
	}
}

const (
	DefaultGoalValue = 1000
	GoalStep         = 100
)

type GoalConfig struct {
	Type  GoalType `json:"type"`
	Value int      `json:"value"`
}

func DefaultGoal() GoalConfig {
	return GoalConfig{Type: GoalDaily, Value: DefaultGoalValue}
}

// Target scales the single goal value to a reporting range with fixed day
// multipliers. Daily is always the raw value; the other ranges use the raw
// value only when the goal was set for that range.
func (g GoalConfig) Target(r Range) int {
	switch r {
	case RangeWeekly:
		if g.Type == GoalWeekly {
			return g.Value
		}
		return g.Value * 7
	case RangeMonthly:
		if g.Type == GoalMonthly {
			return g.Value
		}
		return g.Value * 30
	case RangeYearly:
		if g.Type == GoalYearly {
			return g.Value
		}
		return g.Value * 365
	default:
		return g.Value
	}
}

// Step moves the value by delta, never below zero.
func (g GoalConfig) Step(delta int) GoalConfig {
	g.Value += delta
	if g.Value < 0 {
		g.Value = 0
	}
	return g
}
