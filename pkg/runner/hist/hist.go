// Package hist holds the runners behind the history commands.
package hist

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/history"
	"github.com/nootlabs/nootnote/pkg/printers"
	"github.com/nootlabs/nootnote/pkg/store"
)

// List prints the archive table, newest first.
type List struct {
	ShowID bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	hist := history.NewStore(n.Persistence)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("📂 Archives")
	pp.History(hist.List())
	return nil
}

// View renders a single archived note.
type View struct {
	ID       string
	Username string

	Persistence store.Persistence
}

func (n *View) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	hist := history.NewStore(n.Persistence)

	log, ok := hist.Get(n.ID)
	if !ok {
		return errors.New("hist: no archived log with that id")
	}

	pp := printers.PrettyPrint{}
	pp.Note(log, n.Username)
	return nil
}

// Delete removes the selected logs from the archive. A confirmed
// batch delete also resets the in-progress working day, matching the
// journal's one-gesture cleanup.
type Delete struct {
	IDs []string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	if len(n.IDs) == 0 {
		return nil
	}
	hist := history.NewStore(n.Persistence)

	ids := make(map[string]bool, len(n.IDs))
	for _, id := range n.IDs {
		ids[id] = true
	}
	removed, err := hist.DeleteMany(ids)
	if err != nil {
		return err
	}

	session := daily.NewSession(n.Persistence.Day())
	session.Clear()
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Println(fmt.Sprintf("removed %d, %d archived", removed, hist.Len()))
	return nil
}
