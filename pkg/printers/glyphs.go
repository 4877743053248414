package printers

import (
	"github.com/nootlabs/nootnote/pkg/schedule"
)

// Glyph pairs a journal value with its display symbol.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

var moodGlyphs = map[schedule.Mood]Glyph{
	schedule.MoodHappy:     {Key: "happy", Symbol: "😄", Meaning: "happy"},
	schedule.MoodEnergetic: {Key: "energetic", Symbol: "⚡", Meaning: "energetic"},
	schedule.MoodNeutral:   {Key: "neutral", Symbol: "😐", Meaning: "neutral"},
	schedule.MoodRelax:     {Key: "relax", Symbol: "🍃", Meaning: "relaxed"},
	schedule.MoodTired:     {Key: "tired", Symbol: "😫", Meaning: "tired"},
}

var typeGlyphs = map[schedule.Type]Glyph{
	schedule.TypeWork: {Key: "work", Symbol: "●", Meaning: "work block"},
	schedule.TypeFun:  {Key: "fun", Symbol: "○", Meaning: "leisure"},
	schedule.TypeMeal: {Key: "meal", Symbol: "◆", Meaning: "meal"},
	schedule.TypeRest: {Key: "rest", Symbol: "◌", Meaning: "rest"},
}

// MoodSymbol returns the display glyph for a mood, empty when no mood
// is recorded.
func MoodSymbol(m schedule.Mood) string {
	return moodGlyphs[m].Symbol
}

// TypeSymbol returns the timeline bullet for a schedule item type.
func TypeSymbol(t schedule.Type) string {
	if g, ok := typeGlyphs[t]; ok {
		return g.Symbol
	}
	return typeGlyphs[schedule.TypeWork].Symbol
}
