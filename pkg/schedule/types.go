// Package schedule holds the working day's plan and mood.
package schedule

import (
	"fmt"
	"strings"
)

// Type identifies what kind of activity a schedule item is.
type Type string

const (
	// TypeWork is a work block.
	TypeWork Type = "work"
	// TypeFun is leisure time.
	TypeFun Type = "fun"
	// TypeMeal is a meal.
	TypeMeal Type = "meal"
	// TypeRest is downtime or sleep.
	TypeRest Type = "rest"
)

// AllTypes returns the list of supported item types.
func AllTypes() []Type {
	return []Type{
		TypeWork,
		TypeFun,
		TypeMeal,
		TypeRest,
	}
}

// ParseType converts a string to a Type or returns an error for
// unknown values. The empty string defaults to work.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TypeWork, nil
	}
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeWork, fmt.Errorf("schedule: unknown type %q", raw)
}

// Mood is the single optional mood recorded for a day.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodTired     Mood = "tired"
	MoodEnergetic Mood = "energetic"
	MoodRelax     Mood = "relax"
)

// AllMoods returns the list of supported moods.
func AllMoods() []Mood {
	return []Mood{
		MoodHappy,
		MoodEnergetic,
		MoodNeutral,
		MoodRelax,
		MoodTired,
	}
}

// ParseMood converts a string to a Mood. The empty string stays empty
// (no mood recorded).
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return "", nil
	}
	for _, candidate := range AllMoods() {
		if candidate == m {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("schedule: unknown mood %q", raw)
}

// Item is a single planned block on the day's timeline. Field names
// follow the persisted history format.
type Item struct {
	ID   string `json:"id"`
	Time string `json:"time"` // zero-padded HH:MM
	Task string `json:"task"`
	Type Type   `json:"type"`
}
