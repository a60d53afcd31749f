package view

import (
	"fmt"
	"html/template"
	"io"
)

// fragment mirrors the markup internal/web builds in the browser.
var fragment = template.Must(template.New("view").Funcs(template.FuncMap{
	"field": func(heading, value string) fieldData {
		return fieldData{Heading: heading, Value: orNA(value)}
	},
}).Parse(`
{{- define "field"}}<div><h2>{{.Heading}}</h2><p>{{.Value}}</p></div>{{end -}}
<div id="view" data-state="{{.State}}">
{{- if eq .State.String "loading"}}<p class="loading">Loading…</p>
{{- else if eq .State.String "error"}}<p class="error">Error: {{.Err}}</p>
{{- else}}<div class="data">
{{- template "field" (field "IST Time" .Report.TimeIST)}}
{{- template "field" (field "UTC Time" .Report.TimeUTC)}}
<pre class="raw">{{.Raw}}</pre></div>
{{- end}}</div>
`))

type fieldData struct {
	Heading string
	Value   string
}

// Render writes the HTML fragment for m.
func Render(w io.Writer, m Model) error {
	return fragment.Execute(w, m)
}

// RenderText writes a plain-text summary of m.
func RenderText(w io.Writer, m Model) error {
	var err error
	switch m.State {
	case StateLoading:
		_, err = fmt.Fprintln(w, "Loading…")
	case StateError:
		_, err = fmt.Fprintf(w, "Error: %s\n", m.Err)
	case StateSuccess:
		_, err = fmt.Fprintf(w, "IST Time\n  %s\nUTC Time\n  %s\n\n%s\n",
			orNA(m.Report.TimeIST), orNA(m.Report.TimeUTC), m.Raw)
	default:
		err = fmt.Errorf("unknown view state %s", m.State)
	}
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
