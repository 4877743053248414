// Package printers renders journal state for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nootlabs/nootnote/pkg/daily"
	"github.com/nootlabs/nootnote/pkg/food"
	"github.com/nootlabs/nootnote/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Ledger prints today's foods with the running calorie total.
func (pp *PrettyPrint) Ledger(items []food.Item, total int) {
	if len(items) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, item := range items {
		if pp.ShowID {
			pp.id(y, item.ID)
		}
		icon := item.Icon
		if icon == "" {
			icon = "🍽"
		}
		_, _ = t.Printf("%s %s  %d kcal", icon, item.Name, item.Calories)
		_, _ = f.Printf("  (%.0fg @ %.0f/100g", item.Weight, item.CalPer100g)
		if item.Protein != "" {
			_, _ = f.Printf(", protein %s", item.Protein)
		}
		_, _ = f.Println(")")
	}

	b := color.New(color.Bold)
	_, _ = b.Printf("\ntotal %d kcal\n\n", total)
}

// Schedule prints the day's timeline and mood.
func (pp *PrettyPrint) Schedule(items []schedule.Item, mood schedule.Mood) {
	if mood != "" {
		m := color.New(color.Faint)
		_, _ = m.Printf("mood: %s %s\n\n", MoodSymbol(mood), mood)
	}

	if len(items) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.FgCyan)

	for _, item := range items {
		if pp.ShowID {
			pp.id(y, item.ID)
		}
		_, _ = c.Printf("%s  ", item.Time)
		_, _ = t.Printf("%s %s\n", TypeSymbol(item.Type), item.Task)
	}
	_, _ = t.Println("")
}

// Note renders one archived log as a sticky note.
func (pp *PrettyPrint) Note(log daily.Log, username string) {
	pp.Title(fmt.Sprintf("📌 %s", formatDate(log.Date)))

	pp.Ledger(log.Foods, log.TotalCalories)
	pp.Schedule(log.Schedule, log.Mood)

	if log.Quote != "" {
		q := color.New(color.Italic)
		_, _ = q.Printf("“%s”\n", log.Quote)
	}
	if username != "" {
		f := color.New(color.Faint)
		_, _ = f.Printf("— %s\n", username)
	}
	fmt.Println("")
}

// History renders the archive as a table, newest first.
func (pp *PrettyPrint) History(logs []daily.Log) {
	if len(logs) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "DATE", "KCAL", "FOODS", "PLAN", "MOOD")
	for _, log := range logs {
		table.AddRow(log.ID, formatDate(log.Date), log.TotalCalories,
			len(log.Foods), len(log.Schedule), MoodSymbol(log.Mood))
	}
	fmt.Println(table)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(c *color.Color, id string) {
	_, _ = c.Print(id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = c.Print(strings.Repeat(" ", pad))
	}
}

func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("Monday, Jan 2")
}
