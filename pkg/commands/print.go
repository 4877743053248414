package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/commands/options"
	"github.com/nootlabs/nootnote/pkg/estimate"
	"github.com/nootlabs/nootnote/pkg/runner/archive"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addPrint(topLevel *cobra.Command) {
	lo := &options.LanguageOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Archive today onto a sticky note.",
		Long: "Snapshot today's foods, timeline, and mood into an immutable\n" +
			"note with a generated quote, file it in the archives, and start\n" +
			"a fresh day.",
		Example: `
nootnote print
nootnote print --language zh
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			language := cfg.Language()
			if lo.Language != "" {
				language = lo.Language
			}
			s := archive.Print{
				Language:    language,
				Username:    cfg.Username(),
				ShowID:      io.ShowID,
				Quoter:      estimate.NewGemini(cfg.APIKey()),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddLanguageArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
