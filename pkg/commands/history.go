package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/commands/options"
	"github.com/nootlabs/nootnote/pkg/runner/hist"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"archives"},
		Short:   "Browse the archived notes, newest first.",
		Example: `
nootnote history
nootnote history view 171dff69
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := hist.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	addHistoryView(cmd)
	addHistoryRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addHistoryView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "Show one archived note in full.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := hist.View{
				ID:          args[0],
				Username:    cfg.Username(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addHistoryRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete archived notes. Also resets the working day.",
		Long: "Delete one or more archived notes by id. Deleting archives\n" +
			"also clears any in-progress foods, timeline, and mood for the\n" +
			"current day.",
		Example: `
nootnote history rm 171dff69 --yes
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Yes {
				w := color.New(color.FgHiYellow)
				_, _ = w.Println(fmt.Sprintf(
					"this deletes %d archived note(s) and resets today; re-run with --yes", len(args)))
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := hist.Delete{
				IDs:         args,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
