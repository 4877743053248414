package options

import (
	"github.com/spf13/cobra"
)

// DietOptions captures the food-entry flags.
type DietOptions struct {
	Grams   float64
	Literal bool
	Per100g float64
	Protein string
	Icon    string
}

func AddDietArgs(cmd *cobra.Command, o *DietOptions) {
	cmd.Flags().Float64VarP(&o.Grams, "grams", "g", 0,
		"Explicit weight in grams passed to the estimator.")
	cmd.Flags().BoolVar(&o.Literal, "literal", false,
		"Skip estimation and take the provided numbers as-is.")
	cmd.Flags().Float64Var(&o.Per100g, "per100g", 0,
		"Calories per 100 grams, used with --literal.")
	cmd.Flags().StringVar(&o.Protein, "protein", "",
		`Protein label, example: --protein="5g".`)
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Display glyph for the food.")
}

// AddWeightArg registers just the grams flag for edit commands.
func AddWeightArg(cmd *cobra.Command, o *DietOptions) {
	cmd.Flags().Float64VarP(&o.Grams, "grams", "g", 0,
		"New weight in grams.")
}
