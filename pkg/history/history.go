// Package history owns the archive of past daily logs.
package history

import (
	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/store"
)

// Store is the append-mostly collection of archived logs. Storage
// order is insertion order; List presents newest first. Every
// mutation persists before returning.
type Store struct {
	p    store.Persistence
	logs []daily.Log
}

// NewStore loads the persisted history. Absent or unreadable history
// reads as empty.
func NewStore(p store.Persistence) *Store {
	return &Store{p: p, logs: p.History()}
}

// Append adds a log to the end of the archive and persists it.
func (s *Store) Append(log daily.Log) error {
	s.logs = append(s.logs, log)
	return s.p.SaveHistory(s.logs)
}

// DeleteMany removes every log whose id is in ids and persists the
// result, reporting how many were removed. Unknown ids and an empty
// set are no-ops with no write.
func (s *Store) DeleteMany(ids map[string]bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	kept := s.logs[:0]
	removed := 0
	for _, log := range s.logs {
		if ids[log.ID] {
			removed++
			continue
		}
		kept = append(kept, log)
	}
	if removed == 0 {
		return 0, nil
	}
	s.logs = kept
	return removed, s.p.SaveHistory(s.logs)
}

// List returns the archive newest first. This is a view transform;
// storage order stays oldest first.
func (s *Store) List() []daily.Log {
	out := make([]daily.Log, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		out = append(out, s.logs[i])
	}
	return out
}

// Get finds a single archived log by id.
func (s *Store) Get(id string) (daily.Log, bool) {
	for _, log := range s.logs {
		if log.ID == id {
			return log, true
		}
	}
	return daily.Log{}, false
}

// Len reports the number of archived logs.
func (s *Store) Len() int {
	return len(s.logs)
}
