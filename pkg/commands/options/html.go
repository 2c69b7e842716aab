package options

import (
	"github.com/spf13/cobra"
)

// HTMLOptions
type HTMLOptions struct {
	Tasks []string
}

func AddHTMLArgs(cmd *cobra.Command, o *HTMLOptions) {
	cmd.Flags().StringArrayVarP(&o.Tasks, "task", "t", nil,
		`Add a task to the page, example: --task="Buy milk". Repeatable.`)
}
