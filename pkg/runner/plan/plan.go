// Package plan holds the runners behind the schedule commands.
package plan

import (
	"context"
	"errors"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/printers"
	"github.com/nootlabs/nootnote/pkg/schedule"
	"github.com/nootlabs/nootnote/pkg/store"
	"github.com/nootlabs/nootnote/pkg/timeutil"
)

// Add inserts a schedule item; the board keeps itself sorted by time.
type Add struct {
	Time   string
	Task   string
	Type   schedule.Type
	ShowID bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	clock, err := timeutil.NormalizeClock(n.Time)
	if err != nil {
		return err
	}
	session := daily.NewSession(n.Persistence.Day())

	if _, ok := session.Schedule.Add(clock, n.Task, n.Type); !ok {
		return errors.New("plan: time and task required")
	}
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("📅 Plan")
	pp.Schedule(session.Schedule.Items(), session.Schedule.Mood())
	return nil
}

// Remove drops a schedule item from the board.
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

	if !session.Schedule.Remove(n.ID) {
		return errors.New("plan: no item with that id")
	}
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("📅 Plan")
	pp.Schedule(session.Schedule.Items(), session.Schedule.Mood())
	return nil
}

// Mood records the day's mood, replacing any earlier pick.
type Mood struct {
	Mood schedule.Mood

	Persistence store.Persistence
}

func (n *Mood) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set mood, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())

	session.Schedule.SetMood(n.Mood)
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("📅 Plan")
	pp.Schedule(session.Schedule.Items(), session.Schedule.Mood())
	return nil
}

// List prints today's timeline and mood.
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
	pp.Title("📅 Plan")
	pp.Schedule(session.Schedule.Items(), session.Schedule.Mood())
	return nil
}
