package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/commands/options"
	"tableflip.dev/today/pkg/config"
	"tableflip.dev/today/pkg/locale"
)

var (
	oo = &base.OutputOptions{}
	wo = &options.WidgetOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "today",
		Short: base.Wrap80("A to-do list for today, floating over a field of drifting particles."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddWidgetArgs(cmd, wo)
	_ = cmd.RegisterFlagCompletionFunc("lang", completeLocale)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWindow(topLevel)
	addHTML(topLevel)
	addLocales(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadConfig resolves config from file, environment and the persistent
// widget flags, flags winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	if err := wo.Bind(v, cmd); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func newService(cfg *config.Config) (*app.Service, error) {
	return app.New(app.Options{
		Dictionary: locale.Default(),
		Locale:     cfg.Locale,
		Particles:  cfg.ParticleOptions(),
		Seed:       cfg.Seed,
	})
}
