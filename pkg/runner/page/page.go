// Package page provides the CLI helper that prints the widget as HTML.
package page

import (
	"context"
	"io"
	"os"

	appsvc "tableflip.dev/today/pkg/app"
	htmlpage "tableflip.dev/today/pkg/page"
)

// Page writes the widget markup, optionally adding tasks first.
type Page struct {
	Service *appsvc.Service
	Tasks   []string
	Out     io.Writer
}

// Do adds Tasks through the composer, as a user would, and renders the page.
// Blank tasks are skipped.
func (p *Page) Do(ctx context.Context) error {
	for _, t := range p.Tasks {
		p.Service.SetDraftText(t)
		p.Service.AddTask()
	}
	snap, err := p.Service.Snapshot()
	if err != nil {
		return err
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	return htmlpage.Render(out, snap)
}
