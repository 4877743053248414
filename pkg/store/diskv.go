// Package store persists the working day and the archive history in
// a local diskv database.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/nootlabs/nootnote/pkg/daily"
)

const (
	// historyKey is the single durable slot holding the archived logs,
	// a JSON array in storage (append) order.
	historyKey = "nootnote-history"
	// dayKey holds the in-progress, unarchived day.
	dayKey = "nootnote-day"
)

// Persistence is the durable storage contract for the journal. Reads
// are tolerant: a missing or unreadable slot is an empty value, never
// an error, so a corrupt database degrades to a fresh start. Writes
// persist immediately.
type Persistence interface {
	History() []daily.Log
	SaveHistory(logs []daily.Log) error
	Day() daily.Day
	SaveDay(day daily.Day) error
}

// Load creates a Persistence backed by diskv using the provided
// config, falling back to the default config when cfg is nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) History() []daily.Log {
	val, err := p.d.Read(historyKey)
	if err != nil {
		return nil
	}
	var logs []daily.Log
	if err := json.Unmarshal(val, &logs); err != nil {
		return nil
	}
	return logs
}

func (p *persistence) SaveHistory(logs []daily.Log) error {
	if logs == nil {
		logs = []daily.Log{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("store: marshal history: %w", err)
	}
	if err := p.d.Write(historyKey, data); err != nil {
		return fmt.Errorf("store: write history: %w", err)
	}
	return nil
}

func (p *persistence) Day() daily.Day {
	val, err := p.d.Read(dayKey)
	if err != nil {
		return daily.Day{}
	}
	var day daily.Day
	if err := json.Unmarshal(val, &day); err != nil {
		return daily.Day{}
	}
	return day
}

func (p *persistence) SaveDay(day daily.Day) error {
	data, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("store: marshal day: %w", err)
	}
	if err := p.d.Write(dayKey, data); err != nil {
		return fmt.Errorf("store: write day: %w", err)
	}
	return nil
}

func flatTransform(string) []string { return []string{} }
