package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/commands/options"
	"github.com/nootlabs/nootnote/pkg/runner/plan"
	"github.com/nootlabs/nootnote/pkg/schedule"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addPlan(topLevel *cobra.Command) {
	po := &options.PlanOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "plan [HH:MM task]",
		Short: "Show the day's timeline, or add an item to it.",
		Long: "With no arguments, shows today's timeline and mood. With a\n" +
			"time and a task, adds an item; the timeline stays sorted by time.",
		Example: `
nootnote plan
nootnote plan 09:00 standup
nootnote plan 12:30 lunch with sam --type meal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return errors.New("a task is required after the time")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				s := plan.List{
					ShowID:      io.ShowID,
					Persistence: p,
				}
				return oo.HandleError(s.Do(context.Background()))
			}

			typ, err := schedule.ParseType(po.Type)
			if err != nil {
				return err
			}
			s := plan.Add{
				Time:        args[0],
				Task:        strings.Join(args[1:], " "),
				Type:        typ,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPlanArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)

	addPlanRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addPlanRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an item from the timeline.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := plan.Remove{
				ID:          args[0],
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
