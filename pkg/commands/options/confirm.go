package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions gates destructive commands.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the deletion without prompting.")
}
