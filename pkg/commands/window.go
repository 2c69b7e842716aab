package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/today/pkg/window"
)

func addWindow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "open the particle background in a desktop window",
		Example: `
today window
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
			return window.Run(svc, cfg.FPS)
		},
	}

	topLevel.AddCommand(cmd)
}
