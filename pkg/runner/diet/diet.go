// Package diet holds the runners behind the food ledger commands.
package diet

import (
	"context"
	"errors"
	"strings"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/food"
	"github.com/nootlabs/nootnote/pkg/printers"
	"github.com/nootlabs/nootnote/pkg/store"
)

// Add logs a food for the current day, either by asking the estimator
// to parse free text or by taking the caller's numbers literally.
type Add struct {
	Text    string
	Grams   float64
	Literal bool
	Per100g float64
	Protein string
	Icon    string
	ShowID  bool

	Estimator   food.Estimator
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())

	if n.Literal {
		grams := n.Grams
		if grams <= 0 {
			grams = 100
		}
		item := food.Item{
			Name:       strings.TrimSpace(n.Text),
			Calories:   food.CaloriesFor(grams, n.Per100g),
			Weight:     grams,
			CalPer100g: n.Per100g,
			Protein:    n.Protein,
			Icon:       n.Icon,
		}
		if _, ok := session.Foods.AddLiteral(item); !ok {
			return errors.New("diet: food name required")
		}
	} else {
		session.Foods.AddFromEstimate(ctx, n.Estimator, n.Text, n.Grams)
	}

	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("🍲 Diet")
	pp.Ledger(session.Foods.Items(), session.Foods.Total())
	return nil
}

// Edit changes the weight of a logged food; its calories are
// recomputed from calPer100g.
type Edit struct {
	ID     string
	Grams  float64
	ShowID bool

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())

	if !session.Foods.EditWeight(n.ID, n.Grams) {
		return errors.New("diet: no food with that id")
	}
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("🍲 Diet")
	pp.Ledger(session.Foods.Items(), session.Foods.Total())
	return nil
}

// Remove drops a logged food from the ledger.
type Remove struct {
	ID     string
	ShowID bool

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())

	if !session.Foods.Remove(n.ID) {
		return errors.New("diet: no food with that id")
	}
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("🍲 Diet")
	pp.Ledger(session.Foods.Items(), session.Foods.Total())
	return nil
}

// List prints today's ledger and total.
type List struct {
	ShowID bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("🍲 Diet")
	pp.Ledger(session.Foods.Items(), session.Foods.Total())
	return nil
}
