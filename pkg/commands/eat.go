package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/commands/options"
	"github.com/nootlabs/nootnote/pkg/estimate"
	"github.com/nootlabs/nootnote/pkg/runner/diet"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addEat(topLevel *cobra.Command) {
	do := &options.DietOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "eat <food>",
		Short: "Log a food for today.",
		Long: "Log a food for today. Free text is sent to the estimator,\n" +
			"which breaks it into one or more foods with calories. Use\n" +
			"--literal to skip estimation and record your own numbers.",
		Example: `
nootnote eat fried rice with egg
nootnote eat ramen --grams 350
nootnote eat "protein bar" --literal --grams 60 --per100g 380
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := diet.Add{
				Text:        strings.Join(args, " "),
				Grams:       do.Grams,
				Literal:     do.Literal,
				Per100g:     do.Per100g,
				Protein:     do.Protein,
				Icon:        do.Icon,
				ShowID:      io.ShowID,
				Estimator:   estimate.NewGemini(cfg.APIKey()),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDietArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
