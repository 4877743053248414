package daily

import (
	"github.com/nootlabs/nootnote/pkg/food"
	"github.com/nootlabs/nootnote/pkg/schedule"
)

// Session binds the live ledger and board for the current day. There
// is exactly one per invocation; runners mutate it and snapshot it
// back to storage. No ambient globals.
type Session struct {
	Foods    *food.Ledger
	Schedule *schedule.Board
}

// NewSession rehydrates a session from a persisted day snapshot.
func NewSession(day Day) *Session {
	return &Session{
		Foods:    food.NewLedger(day.Foods...),
		Schedule: schedule.NewBoard(day.Mood, day.Schedule...),
	}
}

// Snapshot captures the session as a Day for persistence or archival.
func (s *Session) Snapshot() Day {
	return Day{
		Foods:    s.Foods.Items(),
		Schedule: s.Schedule.Items(),
		Mood:     s.Schedule.Mood(),
	}
}

// Clear resets the working day after archival or a history purge.
func (s *Session) Clear() {
	s.Foods.Clear()
	s.Schedule.Clear()
}
