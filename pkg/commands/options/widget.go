package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/today/pkg/config"
)

// WidgetOptions are the persistent flags shared by every front end.
type WidgetOptions struct {
	Locale          string
	Density         float64
	RepulsionRadius float64
	FPS             int
	Seed            bool
}

// AddWidgetArgs registers the widget flags on cmd and its children.
func AddWidgetArgs(cmd *cobra.Command, o *WidgetOptions) {
	cmd.PersistentFlags().StringVarP(&o.Locale, "lang", "l", "en",
		"Starting language. One of 'en', 'zh' or 'ar'.")
	cmd.PersistentFlags().Float64Var(&o.Density, "density", 9000,
		base.Wrap80("Canvas area per particle; larger values mean fewer particles."))
	cmd.PersistentFlags().Float64Var(&o.RepulsionRadius, "repulsion-radius", 150,
		"How far the pointer pushes particles away.")
	cmd.PersistentFlags().IntVar(&o.FPS, "fps", 60,
		"Animation frames per second.")
	cmd.PersistentFlags().BoolVar(&o.Seed, "seed", true,
		"Start with the example tasks.")
}

// Bind maps the flags onto config keys so flags override file and
// environment values.
func (o *WidgetOptions) Bind(v *viper.Viper, cmd *cobra.Command) error {
	binds := map[string]string{
		config.KeyLocale:          "lang",
		config.KeyDensity:         "density",
		config.KeyRepulsionRadius: "repulsion-radius",
		config.KeyFPS:             "fps",
		config.KeySeed:            "seed",
	}
	for key, name := range binds {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
