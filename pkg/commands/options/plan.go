package options

import (
	"github.com/spf13/cobra"
)

// PlanOptions captures the schedule-entry flags.
type PlanOptions struct {
	Type string
}

func AddPlanArgs(cmd *cobra.Command, o *PlanOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "work",
		"Item type. One of work, fun, meal, rest.")
}
