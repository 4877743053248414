// Package printer archives a working day onto a sticky note.
package printer

import (
	"context"
	"errors"
	"sync"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/history"
)

// Quoter produces a short motivational line for the archived note.
// Implementations never fail; on any internal error they return a
// fixed per-language fallback so the note always has a quote.
type Quoter interface {
	Quote(ctx context.Context, language string) string
}

// State tracks where the printer is in the archive flow.
type State int

const (
	// StateIdle means no archive is in progress.
	StateIdle State = iota
	// StateGenerating means a quote request is in flight.
	StateGenerating
	// StateArchived means a log was created and the printer is
	// waiting for a reset before it prints again.
	StateArchived
)

// ErrPrinting is returned when Archive is called while an earlier
// archive is still generating. At most one archival is in flight, so
// a working day can never produce duplicate logs.
var ErrPrinting = errors.New("printer: archive already in progress")

// Printer snapshots a day into an immutable log and appends it to
// history. The caller is expected to clear the working day once
// Archive returns.
type Printer struct {
	mu      sync.Mutex
	state   State
	quoter  Quoter
	history *history.Store
	lang    string
}

// New creates an idle printer writing to the given history store.
func New(q Quoter, h *history.Store, language string) *Printer {
	return &Printer{quoter: q, history: h, lang: language}
}

// Archive fetches a quote, snapshots the day into a fresh log, and
// appends it to history. A second call while the quote request is in
// flight fails with ErrPrinting.
func (p *Printer) Archive(ctx context.Context, day daily.Day) (daily.Log, error) {
	p.mu.Lock()
	if p.state == StateGenerating {
		p.mu.Unlock()
		return daily.Log{}, ErrPrinting
	}
	p.state = StateGenerating
	p.mu.Unlock()

	quote := p.quoter.Quote(ctx, p.lang)
	log := daily.NewLog(day, quote)

	if err := p.history.Append(log); err != nil {
		p.setState(StateIdle)
		return daily.Log{}, err
	}
	p.setState(StateArchived)
	return log, nil
}

// Reset is the "print another" action: back to idle with no change to
// history. It does not undo the prior archival.
func (p *Printer) Reset() {
	p.setState(StateIdle)
}

// State reports the current archive state.
func (p *Printer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Printer) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}
