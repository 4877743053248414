package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nootnote",
		Short: base.Wrap80("Diet and schedule journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addEat(topLevel)
	addDiet(topLevel)
	addPlan(topLevel)
	addMood(topLevel)
	addPrint(topLevel)
	addHistory(topLevel)
	addVersion(topLevel)
}
