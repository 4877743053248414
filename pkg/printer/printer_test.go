package printer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/food"
	"github.com/nootlabs/nootnote/pkg/history"
	"github.com/nootlabs/nootnote/pkg/schedule"
)

type memPersistence struct {
	history []daily.Log
	day     daily.Day
	failAll bool
}

func (m *memPersistence) History() []daily.Log { return m.history }

func (m *memPersistence) SaveHistory(logs []daily.Log) error {
	if m.failAll {
		return errors.New("disk full")
	}
	m.history = make([]daily.Log, len(logs))
	copy(m.history, logs)
	return nil
}

func (m *memPersistence) Day() daily.Day { return m.day }

func (m *memPersistence) SaveDay(d daily.Day) error {
	m.day = d
	return nil
}

type quoterFunc func(ctx context.Context, language string) string

func (f quoterFunc) Quote(ctx context.Context, language string) string {
	return f(ctx, language)
}

func staticQuoter(q string) Quoter {
	return quoterFunc(func(context.Context, string) string { return q })
}

func sampleDay() daily.Day {
	return daily.Day{
		Foods: []food.Item{
			{ID: "f1", Name: "lunch", Calories: 700},
			{ID: "f2", Name: "dinner", Calories: 500},
		},
		Schedule: []schedule.Item{
			{ID: "s1", Time: "09:00", Task: "standup", Type: schedule.TypeWork},
		},
		Mood: schedule.MoodEnergetic,
	}
}

func TestArchive(t *testing.T) {
	mp := &memPersistence{}
	p := New(staticQuoter("onward"), history.NewStore(mp), "en")

	log, err := p.Archive(context.Background(), sampleDay())
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if log.TotalCalories != 1200 {
		t.Fatalf("expected total 1200, got %d", log.TotalCalories)
	}
	if log.Mood != schedule.MoodEnergetic {
		t.Fatalf("expected energetic, got %q", log.Mood)
	}
	if log.Quote == "" {
		t.Fatal("expected a non-empty quote")
	}
	if len(mp.history) != 1 {
		t.Fatalf("expected 1 persisted log, got %d", len(mp.history))
	}
	if p.State() != StateArchived {
		t.Fatalf("expected archived state, got %v", p.State())
	}
}

func TestArchiveRejectsReentry(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	q := quoterFunc(func(context.Context, string) string {
		close(started)
		<-release
		return "patience"
	})

	mp := &memPersistence{}
	p := New(q, history.NewStore(mp), "en")

	done := make(chan error, 1)
	go func() {
		_, err := p.Archive(context.Background(), sampleDay())
		done <- err
	}()

	<-started
	if _, err := p.Archive(context.Background(), sampleDay()); !errors.Is(err, ErrPrinting) {
		t.Fatalf("expected ErrPrinting for the second call, got %v", err)
	}

	close(release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first archive failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first archive never finished")
	}

	// Exactly one log, not two.
	if len(mp.history) != 1 {
		t.Fatalf("expected exactly 1 log, got %d", len(mp.history))
	}
}

func TestArchiveAppendFailureReturnsToIdle(t *testing.T) {
	mp := &memPersistence{failAll: true}
	p := New(staticQuoter("q"), history.NewStore(mp), "en")

	if _, err := p.Archive(context.Background(), sampleDay()); err == nil {
		t.Fatal("expected append failure to surface")
	}
	if p.State() != StateIdle {
		t.Fatalf("expected idle after failure, got %v", p.State())
	}
	// A retry is allowed once idle.
	mp.failAll = false
	if _, err := p.Archive(context.Background(), sampleDay()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestResetIsIdempotentOnHistory(t *testing.T) {
	mp := &memPersistence{}
	p := New(staticQuoter("q"), history.NewStore(mp), "en")

	if _, err := p.Archive(context.Background(), sampleDay()); err != nil {
		t.Fatalf("archive: %v", err)
	}
	p.Reset()
	if p.State() != StateIdle {
		t.Fatalf("expected idle after reset, got %v", p.State())
	}
	if len(mp.history) != 1 {
		t.Fatalf("reset must not touch history, got %d logs", len(mp.history))
	}
}
