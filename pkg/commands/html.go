package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/today/pkg/commands/options"
	"tableflip.dev/today/pkg/runner/page"
)

func addHTML(topLevel *cobra.Command) {
	ho := &options.HTMLOptions{}

	cmd := &cobra.Command{
		Use:   "html",
		Short: "print the page markup for the widget",
		Example: `
today html --lang zh
today html --task "Buy milk" --task "Call mum" --seed=false
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			p := page.Page{Service: svc, Tasks: ho.Tasks, Out: color.Output}
			return p.Do(cmd.Context())
		},
	}
	options.AddHTMLArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}
