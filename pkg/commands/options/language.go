package options

import (
	"github.com/spf13/cobra"
)

// LanguageOptions overrides the configured quote language.
type LanguageOptions struct {
	Language string
}

func AddLanguageArgs(cmd *cobra.Command, o *LanguageOptions) {
	cmd.Flags().StringVarP(&o.Language, "language", "l", "",
		"Quote language. One of en, zh. Defaults to the configured language.")
}
