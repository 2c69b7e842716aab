package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/today/pkg/locale"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(today completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(today completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func localeCompletions(toComplete string) []string {
	var out []string
	for _, l := range locale.Order {
		if strings.HasPrefix(string(l), toComplete) {
			out = append(out, string(l))
		}
	}
	return out
}

func completeLocale(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return localeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}
