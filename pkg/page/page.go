// Package page renders the widget as a static HTML document. Task text is
// escaped by html/template, so user input cannot inject markup.
package page

import (
	"html/template"
	"io"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/locale"
)

var tmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Doc.Lang}}" dir="{{.Doc.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Doc.Title}}</title>
</head>
<body style="{{.Font}}">
<canvas id="bgCanvas"></canvas>
<span id="langIcon" class="fixed top-4 {{.Doc.SwitchAnchor}} cursor-pointer">{{.Doc.Lang}}</span>
<main>
<h1 id="appTitle">{{.Doc.Title}}</h1>
<div id="taskList" class="task-list">
{{- range .Rows}}
<div class="flex items-center space-x-4">
<div class="task-circle{{if .Completed}} completed{{end}}"></div>
<span class="task-text{{if .Completed}} completed{{end}}"{{if .Key}} data-key="{{.Key}}"{{end}}>{{.Text}}</span>
<span class="{{.Align}} cursor-pointer text-gray-400 trash-icon hover:text-red-500">&#x2715;</span>
</div>
{{- end}}
</div>
<button id="showNewTaskButton"><span>{{.Doc.ShowButton}}</span></button>
<div id="newTaskInputContainer" class="{{if .ComposerOpen}}scale-y-100{{else}}scale-y-0{{end}}">
<input id="newTaskInput" type="text" placeholder="{{.Doc.Placeholder}}" value="{{.Draft}}">
<button id="addTaskButton"{{if not .CanSubmit}} disabled class="bg-gray-400 cursor-not-allowed"{{else}} class="bg-[#9B70E5] cursor-pointer"{{end}}>{{.Doc.AddButton}}</button>
</div>
</main>
</body>
</html>
`))

type view struct {
	Doc          locale.Document
	Font         template.CSS
	Rows         []rowView
	ComposerOpen bool
	Draft        string
	CanSubmit    bool
}

type rowView struct {
	Text      string
	Key       locale.Key
	Completed bool
	Align     locale.Align
}

// Render writes the snapshot as an HTML page.
func Render(w io.Writer, snap app.Snapshot) error {
	v := view{
		Doc:          snap.Document,
		Font:         template.CSS("font-family: " + snap.Document.FontFamily),
		ComposerOpen: snap.ComposerOpen,
		Draft:        snap.Draft,
		CanSubmit:    snap.CanSubmit,
	}
	for _, r := range snap.Rows {
		v.Rows = append(v.Rows, rowView{Text: r.Text, Key: r.Key, Completed: r.Completed, Align: r.Align})
	}
	return tmpl.Execute(w, v)
}
