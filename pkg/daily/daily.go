// Package daily defines the working day and its archived form.
package daily

import (
	"time"

	"github.com/google/uuid"

	"github.com/nootlabs/nootnote/pkg/food"
	"github.com/nootlabs/nootnote/pkg/schedule"
)

// Day is a plain snapshot of the working day: the food ledger, the
// schedule, and the optional mood. It is what gets persisted between
// invocations and what the archiver consumes.
type Day struct {
	Foods    []food.Item     `json:"foods"`
	Schedule []schedule.Item `json:"schedule"`
	Mood     schedule.Mood   `json:"mood,omitempty"`
}

// Log is one archived day. Once created it is never mutated, only
// deleted as a whole. Field names follow the persisted history
// format.
type Log struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // RFC3339 creation time
	TotalCalories int             `json:"totalCalories"`
	Foods         []food.Item     `json:"foods"`
	Schedule      []schedule.Item `json:"schedule"`
	Mood          schedule.Mood   `json:"mood,omitempty"`
	Quote         string          `json:"quote,omitempty"`
}

// NewLog snapshots a day into a fresh archive record. The food and
// schedule slices are copied so later edits to the working day can
// never reach into history.
func NewLog(day Day, quote string) Log {
	foods := make([]food.Item, len(day.Foods))
	copy(foods, day.Foods)
	items := make([]schedule.Item, len(day.Schedule))
	copy(items, day.Schedule)

	total := 0
	for _, f := range foods {
		total += f.Calories
	}

	return Log{
		ID:            uuid.NewString(),
		Date:          time.Now().UTC().Format(time.RFC3339),
		TotalCalories: total,
		Foods:         foods,
		Schedule:      items,
		Mood:          day.Mood,
		Quote:         quote,
	}
}
