package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/runner/locales"
)

func addLocales(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "Print the translation dictionary",
		Example: `
today locales
today locales --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			l := locales.Locales{Dictionary: locale.Default(), JSON: oo.JSON}
			err := l.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
