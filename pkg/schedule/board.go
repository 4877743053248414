package schedule

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Board is the mutable, unarchived schedule for the current day plus
// the day's mood. The item list is kept sorted ascending by time
// after every insert.
type Board struct {
	items []Item
	mood  Mood
}

// NewBoard seeds a board with the given items and mood. The items are
// re-sorted so a board is always in time order, whatever the caller
// provides.
func NewBoard(mood Mood, items ...Item) *Board {
	b := &Board{mood: mood, items: make([]Item, 0, len(items))}
	b.items = append(b.items, items...)
	b.sort()
	return b
}

// Add inserts a new item with a fresh id and re-sorts the list. Blank
// time or task strings are rejected as a no-op.
func (b *Board) Add(clock, task string, typ Type) (Item, bool) {
	clock = strings.TrimSpace(clock)
	task = strings.TrimSpace(task)
	if clock == "" || task == "" {
		return Item{}, false
	}
	item := Item{
		ID:   uuid.NewString(),
		Time: clock,
		Task: task,
		Type: typ,
	}
	b.items = append(b.items, item)
	b.sort()
	return item, true
}

// Remove deletes the matching item. Unknown ids are a no-op.
func (b *Board) Remove(id string) bool {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetMood replaces the current mood unconditionally.
func (b *Board) SetMood(m Mood) {
	b.mood = m
}

// Mood returns the current mood, empty if none was recorded.
func (b *Board) Mood() Mood {
	return b.mood
}

// Items returns a copy of the current entries in time order.
func (b *Board) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Len reports the number of entries.
func (b *Board) Len() int {
	return len(b.items)
}

// Clear empties the schedule and drops the mood, used after the day
// is archived.
func (b *Board) Clear() {
	b.items = nil
	b.mood = ""
}

// Zero-padded HH:MM strings order correctly under string compare.
func (b *Board) sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return b.items[i].Time < b.items[j].Time
	})
}
