package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nootlabs/nootnote/pkg/runner/plan"
	"github.com/nootlabs/nootnote/pkg/schedule"
	"github.com/nootlabs/nootnote/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	long := strings.Builder{}
	long.WriteString("Record today's mood. Picking again replaces the earlier pick.\n\nMoods:\n")

	validArgs := make([]string, 0, len(schedule.AllMoods()))
	for _, m := range schedule.AllMoods() {
		long.WriteString(fmt.Sprintf("  %s\n", m))
		validArgs = append(validArgs, string(m))
	}

	cmd := &cobra.Command{
		Use:   "mood <mood>",
		Short: "Record today's mood.",
		Long:  long.String(),
		Example: `
nootnote mood energetic
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := schedule.ParseMood(args[0])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := plan.Mood{
				Mood:        m,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
