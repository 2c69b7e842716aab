// Package locales provides CLI helpers to display the translation dictionary.
package locales

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/today/pkg/locale"
)

// Locales prints every dictionary entry per language.
type Locales struct {
	Dictionary *locale.Dictionary
	JSON       bool
	Out        io.Writer
}

// Do renders the dictionary to Out (stdout by default).
func (l *Locales) Do(ctx context.Context) error {
	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.JSON {
		return l.json(out)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40

	header := []interface{}{bold.Sprint("key")}
	for _, loc := range locale.Order {
		header = append(header, bold.Sprintf("%s (%s)", loc, loc.Direction()))
	}
	tbl.AddRow(header...)
	for _, k := range locale.RequiredKeys() {
		row := []interface{}{string(k)}
		for _, loc := range locale.Order {
			text, err := l.Dictionary.Lookup(loc, k)
			if err != nil {
				return err
			}
			row = append(row, text)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

func (l *Locales) json(out io.Writer) error {
	doc := make(map[locale.Locale]map[locale.Key]string, len(locale.Order))
	for _, loc := range locale.Order {
		texts := make(map[locale.Key]string)
		for _, k := range l.Dictionary.Keys(loc) {
			text, err := l.Dictionary.Lookup(loc, k)
			if err != nil {
				return err
			}
			texts[k] = text
		}
		doc[loc] = texts
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
