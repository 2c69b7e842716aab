package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/today/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
today ui
today ui --lang ar
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("today ui needs an interactive terminal")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			return teaui.Run(svc, cfg)
		},
	}

	topLevel.AddCommand(cmd)
}
