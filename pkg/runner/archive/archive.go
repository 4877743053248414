// Package archive holds the runner behind the print command.
package archive

import (
	"context"
	"errors"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/history"
	"github.com/nootlabs/nootnote/pkg/printer"
	"github.com/nootlabs/nootnote/pkg/printers"
	"github.com/nootlabs/nootnote/pkg/store"
)

// Print archives the working day: it fetches a quote, snapshots the
// day into an immutable log appended to history, then clears the
// ledger, board, and mood for a fresh day.
type Print struct {
	Language string
	Username string
	ShowID   bool

	Quoter      printer.Quoter
	Persistence store.Persistence
}

func (n *Print) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not print, no persistence")
	}
	session := daily.NewSession(n.Persistence.Day())
	hist := history.NewStore(n.Persistence)
	p := printer.New(n.Quoter, hist, n.Language)

	log, err := p.Archive(ctx, session.Snapshot())
	if err != nil {
		return err
	}

	session.Clear()
	if err := n.Persistence.SaveDay(session.Snapshot()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Note(log, n.Username)
	return nil
}
