package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/commands/options"
	"github.com/nootlabs/nootnote/pkg/runner/diet"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addDiet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Show today's food ledger.",
		Example: `
nootnote diet
nootnote diet --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := diet.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	addDietEdit(cmd)
	addDietRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addDietEdit(topLevel *cobra.Command) {
	do := &options.DietOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a food's weight; calories are recomputed.",
		Example: `
nootnote diet edit 171dff69 --grams 250
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := diet.Edit{
				ID:          args[0],
				Grams:       do.Grams,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWeightArg(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addDietRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a food from today's ledger.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := diet.Remove{
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
