package teaui

import (
	appsvc "tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/config"
	tuiapp "tableflip.dev/today/pkg/tui/app"
)

// Run launches the Bubble Tea UI with the frame rate and cell geometry from
// cfg.
func Run(svc *appsvc.Service, cfg *config.Config) error {
	return tuiapp.Run(svc, tuiapp.Options{
		FPS:        cfg.FPS,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
	})
}
