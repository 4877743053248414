package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Estimate is one structured result from a text-to-nutrition
// estimator. It carries no id; the ledger assigns one on insert.
type Estimate struct {
	Name       string
	Calories   int
	Weight     float64
	CalPer100g float64
	Protein    string
	Icon       string
}

// Estimator converts a free-text description into zero or more food
// estimates. Implementations never fail; on any internal error they
// return an empty result so the caller treats it as nothing to add.
type Estimator interface {
	Estimate(ctx context.Context, text string) []Estimate
}

// Ledger is the mutable, unarchived food list for the current day.
type Ledger struct {
	items []Item
}

// NewLedger seeds a ledger with the given items.
func NewLedger(items ...Item) *Ledger {
	l := &Ledger{items: make([]Item, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// AddFromEstimate asks the estimator to parse text and appends every
// returned estimate in order. A positive grams value is folded into
// the query as an explicit weight prefix. Blank text is a no-op, and
// an estimator that produces nothing leaves the ledger unchanged.
func (l *Ledger) AddFromEstimate(ctx context.Context, est Estimator, text string, grams float64) []Item {
	text = strings.TrimSpace(text)
	if text == "" || est == nil {
		return nil
	}

	query := text
	if grams > 0 {
		query = fmt.Sprintf("%gg %s", grams, text)
	}

	added := make([]Item, 0)
	for _, e := range est.Estimate(ctx, query) {
		item := Item{
			ID:         uuid.NewString(),
			Name:       e.Name,
			Calories:   e.Calories,
			Weight:     e.Weight,
			CalPer100g: e.CalPer100g,
			Protein:    e.Protein,
			Icon:       e.Icon,
		}
		l.items = append(l.items, item)
		added = append(added, item)
	}
	return added
}

// AddLiteral appends a caller-constructed item, bypassing estimation.
// Items without a name are rejected. A missing id is filled in.
func (l *Ledger) AddLiteral(item Item) (Item, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return Item{}, false
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	l.items = append(l.items, item)
	return item, true
}

// EditWeight sets a new weight for the matching item and recomputes
// its calories from calPer100g. Everything else is untouched. Unknown
// ids and non-positive weights are no-ops.
func (l *Ledger) EditWeight(id string, grams float64) bool {
	if grams <= 0 {
		return false
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Weight = grams
			l.items[i].Calories = CaloriesFor(grams, l.items[i].CalPer100g)
			return true
		}
	}
	return false
}

// Remove deletes the matching item. Unknown ids are a no-op.
func (l *Ledger) Remove(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums calories across the ledger.
func (l *Ledger) Total() int {
	total := 0
	for _, item := range l.items {
		total += item.Calories
	}
	return total
}

// Items returns a copy of the current entries in insertion order.
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of entries.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Clear empties the ledger, used after the day is archived.
func (l *Ledger) Clear() {
	l.items = nil
}
