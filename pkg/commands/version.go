package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Build information, stamped by the release build with
// -ldflags "-X tableflip.dev/today/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// addVersion reports the build of the widget binary as json or yaml.
func addVersion(topLevel *cobra.Command) {
	var (
		short  bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the today build version.",
		Example: `
today version
today version --short
today version -o yaml
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version, commit, date, output))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
